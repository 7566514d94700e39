package v1

type AddMetadataValueRequest struct {
	Name        string `json:"name" binding:"required" example:"NXOS"`
	Description string `json:"description"`
}

type RemoveMetadataValueRequest struct {
	Name string `json:"name" binding:"required"`
}

type ListMetadataResponseData struct {
	List []string `json:"list"`
}
