package response

type InstitutionsResponse struct {
	Institutions []string `json:"institutions"`
}
