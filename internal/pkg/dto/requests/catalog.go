package requests

type Speciality struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type Study struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type CatalogPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (f Speciality) ToPayload() interface{} {
	return CatalogPayload(f)
}

func (f Study) ToPayload() interface{} {
	return CatalogPayload(f)
}
