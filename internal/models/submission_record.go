package models

// LogoFileDescriptor is the attachment as carried inside a SubmissionRecord.
// File holds the raw bytes (base64 on the wire).
type LogoFileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	File []byte `json:"file"`
}

// SubmissionRecord is the normalized payload handed to a submission sink.
// Field names and the source/routeTo literals are a wire contract.
type SubmissionRecord struct {
	Name                     string              `json:"name"`
	Email                    string              `json:"email"`
	Phone                    string              `json:"phone"`
	VehicleYear              string              `json:"vehicleYear"`
	VehicleMake              string              `json:"vehicleMake"`
	VehicleModel             string              `json:"vehicleModel"`
	VehicleType              string              `json:"vehicleType"`
	Location                 string              `json:"location"`
	PreferredInstallLocation string              `json:"preferredInstallLocation"`
	Industry                 string              `json:"industry"`
	Message                  *string             `json:"message"`
	TermsAccepted            bool                `json:"termsAccepted"`
	LogoFile                 *LogoFileDescriptor `json:"logoFile"`
	Timestamp                string              `json:"timestamp"`
	Source                   string              `json:"source"`
	RouteTo                  string              `json:"routeTo"`
}
