package models

// Curve is a participant-submitted time series scoped to a session. Payload
// is opaque to the access core. Large payloads may live in blob storage
// instead, in which case BlobKey names the stored object and Payload is nil.
type Curve struct {
	ID          int64
	Session     string
	Participant *int64
	Payload     []byte
	BlobKey     *string
}

// CurveUpdate carries the optional fields a curve update may change.
type CurveUpdate struct {
	Payload *[]byte `json:"payload"`
	BlobKey *string `json:"blob_key"`
}
