package v1

type PeopleHubClient struct {
	Transport          *Transport
	Announcements      *AnnouncementEndpoint
	Documents          *DocumentEndpoint
	DocumentCategories *DocumentCategoryEndpoint
	Meetings           *MeetingEndpoint
	Payrolls           *PayrollEndpoint
	Shifts             *ShiftEndpoint
}

// NewPeopleHubClient initializes the API client
func NewPeopleHubClient(baseURL string, token string) *PeopleHubClient {
	t := NewTransport(baseURL, token)
	return &PeopleHubClient{
		Transport:          t,
		Announcements:      &AnnouncementEndpoint{transport: t},
		Documents:          &DocumentEndpoint{transport: t},
		DocumentCategories: &DocumentCategoryEndpoint{transport: t},
		Meetings:           &MeetingEndpoint{transport: t},
		Payrolls:           &PayrollEndpoint{transport: t},
		Shifts:             &ShiftEndpoint{transport: t},
	}
}
