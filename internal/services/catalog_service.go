package services

import "internboat/internal/domain"

// The catalog is fixed in code: four offerings, same content on every
// call, regardless of who asks. There was talk of filtering by role;
// until that is a real requirement the list stays static.
var courses = []domain.Course{
	{ID: "python-fundamentals", Name: "Python Fundamentals", Price: 499, Image: "python.png"},
	{ID: "web-dev-bootcamp", Name: "Web Development Bootcamp", Price: 799, Image: "webdev.png"},
	{ID: "data-science-essentials", Name: "Data Science Essentials", Price: 999, Image: "datascience.png"},
	{ID: "cloud-computing-basics", Name: "Cloud Computing Basics", Price: 699, Image: "cloud.png"},
}

type CatalogService struct{}

func NewCatalogService() *CatalogService { return &CatalogService{} }

// Courses returns a copy so callers can't mutate the catalog.
func (s *CatalogService) Courses() []domain.Course {
	out := make([]domain.Course, len(courses))
	copy(out, courses)
	return out
}
