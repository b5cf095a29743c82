package request

type CreateDistributorRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateServiceAdvisorRequest struct {
	Name string `json:"name" binding:"required"`
}
