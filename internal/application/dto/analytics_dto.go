package dto

// AdminAnalyticsResponse respuesta de GET /api/admin/analytics.
type AdminAnalyticsResponse struct {
	TotalUsers         int               `json:"total_users"`
	TotalCustomers     int               `json:"total_customers"`
	TotalProfessionals int               `json:"total_professionals"`
	TotalBookings      int               `json:"total_bookings"`
	CompletedBookings  int               `json:"completed_bookings"`
	PendingBookings    int               `json:"pending_bookings"`
	TotalServices      int               `json:"total_services"`
	RecentBookings     []BookingResponse `json:"recent_bookings"`
}
