package dto

// Envelope is the uniform response body: {success, data|error, ...}.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Search     *SearchMeta `json:"search,omitempty"`
	Filters    interface{} `json:"filters,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
	Path       string      `json:"path,omitempty"`
	Method     string      `json:"method,omitempty"`
}

// PageRequest paging parameters taken from the query string.
type PageRequest struct {
	Limit  int
	Offset int
}

// Clamp applies the default page size and floors negative values so they
// never reach a LIMIT/OFFSET clause.
func (p *PageRequest) Clamp(defaultLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Pagination metadata echoed on list responses.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// SearchMeta metadata echoed on search responses.
type SearchMeta struct {
	Term    string `json:"term"`
	Results int    `json:"results"`
	Limit   int    `json:"limit"`
}
