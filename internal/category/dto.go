package category

type ListCategoriesResponse struct {
	Success    bool   `json:"success"`
	Categories Lookup `json:"categories"`
}
