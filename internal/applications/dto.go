package applications

import "time"

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ID              string          `json:"id"`
	Company         string          `json:"company"`
	Role            string          `json:"role"`
	JobLink         string          `json:"jobLink"`
	ResumeID        string          `json:"resumeId"`
	Status          string          `json:"status"`
	ApplicationDate *time.Time      `json:"applicationDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	Notes           []NoteEntry     `json:"notes"`
	Timeline        []TimelineEntry `json:"timeline"`
}

// NoteEntry is one note in a response.
type NoteEntry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimelineEntry is one timeline event in a response.
type TimelineEntry struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func toResponse(app Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              app.ID,
		Company:         app.Company,
		Role:            app.Role,
		JobLink:         app.JobLink,
		ResumeID:        app.ResumeID,
		Status:          string(app.Status),
		ApplicationDate: app.ApplicationDate,
		CreatedAt:       app.CreatedAt,
		Notes:           make([]NoteEntry, 0, len(app.Notes)),
		Timeline:        make([]TimelineEntry, 0, len(app.Timeline)),
	}
	for _, note := range app.Notes {
		resp.Notes = append(resp.Notes, NoteEntry{ID: note.ID, Content: note.Content, CreatedAt: note.CreatedAt})
	}
	for _, event := range app.Timeline {
		resp.Timeline = append(resp.Timeline, TimelineEntry{
			ID:          event.ID,
			Type:        string(event.Type),
			Title:       event.Title,
			Description: event.Description,
			Date:        event.Date,
		})
	}
	return resp
}
