package request

type InstitutionLookupRequest struct {
	Query string `form:"q" binding:"omitempty,max=200"`
}
