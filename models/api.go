package models

// APIError carries a stable machine code plus a human-readable message.
// The code values are part of the wire contract; clients map them to
// locale-specific messages.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the tagged result envelope every endpoint returns.
// Exactly one of Data and Error is set, discriminated by OK.
type APIResponse struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *APIError   `json:"error,omitempty"`
}

// OKResponse wraps a payload in a success envelope.
func OKResponse(data interface{}) APIResponse {
	return APIResponse{OK: true, Data: data}
}

// FailResponse wraps an error code and message in a failure envelope.
func FailResponse(code, message string) APIResponse {
	return APIResponse{OK: false, Error: &APIError{Code: code, Message: message}}
}

// CreateReservationInput is the payload for the public create endpoint.
type CreateReservationInput struct {
	SlotID     int    `json:"slotId"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	RoomNumber string `json:"roomNumber,omitempty"`
	Note       string `json:"note,omitempty"`
}

// CancelReservationInput is the payload for the public cancel endpoint.
type CancelReservationInput struct {
	ID string `json:"id"`
}

// BlockSlotInput is the payload for the admin block endpoint.
type BlockSlotInput struct {
	SlotID   int    `json:"slotId"`
	StartAt  string `json:"startAt"`
	EndAt    string `json:"endAt"`
	Reason   string `json:"reason"`
	AdminKey string `json:"adminKey"`
}

// AvailabilityResponse is the payload of the availability endpoint.
type AvailabilityResponse struct {
	Date         string            `json:"date"`
	Slots        []Slot            `json:"slots"`
	Reservations []ReservationView `json:"reservations"`
}

// AdminListResponse is the payload of the admin list endpoint.
type AdminListResponse struct {
	Items []ReservationView `json:"items"`
}
