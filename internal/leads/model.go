package leads

import "time"

// Lead represents a customer service request captured via the public form.
type Lead struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Phone       string    `json:"phone" bson:"phone"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	ServiceType string    `json:"serviceType,omitempty" bson:"service_type,omitempty"`
	Message     string    `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CreateLeadRequest represents the request body for submitting a lead.
// Validation is structural only; no field is normalized.
type CreateLeadRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Phone       string `json:"phone" validate:"notblank"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Message     string `json:"message"`
}
