package responses

// Entity is implemented by every DTO listed on a console screen.
type Entity interface {
	GetID() string
	ToLookupOption() LookupOption
	CSVHeader() []string
	CSVRecord() []string
}

type LookupOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Export struct {
	Resource  string `json:"resource"`
	Object    string `json:"object"`
	Rows      int    `json:"rows"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
