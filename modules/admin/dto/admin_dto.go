package dto

// LoginRequest is the admin credential payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ArchiveRequest controls the archive-and-reset batch. DeleteTeams wipes
// all history and teams after the daily snapshot is taken; irreversible.
type ArchiveRequest struct {
	DeleteTeams bool `json:"delete_teams"`
}

type ArchiveResponse struct {
	Success       bool   `json:"success"`
	ArchivedCount int64  `json:"archived_count"`
	Message       string `json:"message"`
}
