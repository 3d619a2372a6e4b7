package dto

// DashboardSummaryDTO respuesta de GET /api/v1/dashboard/summary y tarjetas del panel.
type DashboardSummaryDTO struct {
	Services            int `json:"services"`
	Projects            int `json:"projects"`
	VisibleProjects     int `json:"visible_projects"`
	Categories          int `json:"categories"`
	Advertisements      int `json:"advertisements"`
	PublishedAds        int `json:"published_ads"`
	FAQs                int `json:"faqs"`
	Testimonials        int `json:"testimonials"`
	PendingTestimonials int `json:"pending_testimonials"`
	Users               int `json:"users"`
}
