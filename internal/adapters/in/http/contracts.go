package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterAgentRequest is the body of POST /api/v1/agents.
type RegisterAgentRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Phone        *string `json:"phone,omitempty"`
	Vehicle      *string `json:"vehicle,omitempty"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	AgentID int64  `json:"agent_id"`
	Token   string `json:"token"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
// AgentID, when present, requests immediate assignment.
type CreateParcelRequest struct {
	TrackingCode       string   `json:"tracking_code"`
	DestinationAddress string   `json:"destination_address"`
	Recipient          string   `json:"recipient"`
	RecipientPhone     *string  `json:"recipient_phone,omitempty"`
	Instructions       *string  `json:"instructions,omitempty"`
	WeightKg           *float64 `json:"weight_kg,omitempty"`
	AgentID            *int64   `json:"agent_id,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// AssignParcelRequest is the body of POST /api/v1/parcels/:id/assign.
type AssignParcelRequest struct {
	AgentID int64 `json:"agent_id"`
}

// SetStatusRequest is the body of PUT /api/v1/parcels/:id/status.
type SetStatusRequest struct {
	Status       string  `json:"status"`
	Observations *string `json:"observations,omitempty"`
}

// ConfirmDeliveryRequest is the body of POST /api/v1/parcels/:id/delivery.
type ConfirmDeliveryRequest struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	EvidencePhoto *string `json:"evidence_photo,omitempty"`
	Observations  *string `json:"observations,omitempty"`
}

// Parcel is the full parcel representation returned by GET /api/v1/parcels/:id.
type Parcel struct {
	ID                 int64      `json:"id"`
	TrackingCode       string     `json:"tracking_code"`
	DestinationAddress string     `json:"destination_address"`
	Recipient          string     `json:"recipient"`
	RecipientPhone     *string    `json:"recipient_phone,omitempty"`
	Instructions       *string    `json:"instructions,omitempty"`
	WeightKg           *float64   `json:"weight_kg,omitempty"`
	Status             string     `json:"status"`
	AgentID            *int64     `json:"agent_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	DeliveryLatitude   *float64   `json:"delivery_latitude,omitempty"`
	DeliveryLongitude  *float64   `json:"delivery_longitude,omitempty"`
	EvidencePhoto      *string    `json:"evidence_photo,omitempty"`
	Observations       *string    `json:"observations,omitempty"`
}

// HistoryEntry is one ledger record in GET /api/v1/parcels/:id/history.
// PreviousStatus is null only for the creation entry.
type HistoryEntry struct {
	ID             int64     `json:"id"`
	ParcelID       int64     `json:"parcel_id"`
	PreviousStatus *string   `json:"previous_status"`
	NextStatus     string    `json:"next_status"`
	ChangedAt      time.Time `json:"changed_at"`
	Observations   *string   `json:"observations,omitempty"`
}

// Agent is one roster entry in GET /api/v1/agents.
type Agent struct {
	ID            int64     `json:"id"`
	EmployeeCode  string    `json:"employee_code"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	Vehicle       *string   `json:"vehicle,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	ActiveParcels int       `json:"active_parcels"`
}

// AgentParcel is one workload entry in GET /api/v1/agents/:id/parcels.
type AgentParcel struct {
	ID                 int64      `json:"id"`
	TrackingCode       string     `json:"tracking_code"`
	DestinationAddress string     `json:"destination_address"`
	Recipient          string     `json:"recipient"`
	Status             string     `json:"status"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
}
