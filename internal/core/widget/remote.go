package widget

import "context"

// TodayPayload is what the remote service reports for the current day.
type TodayPayload struct {
	Level     string `json:"level"`
	Routine   string `json:"routine"`
	Completed bool   `json:"completed"`
	Day       string `json:"day"`
}

// ProfilePayload mirrors the remote /user/me response.
type ProfilePayload struct {
	Username         string `json:"username"`
	Level            string `json:"level"`
	StartedAt        string `json:"startedAt"`
	MonthlyCompleted int    `json:"monthlyCompleted"`
	TotalCompleted   int    `json:"totalCompleted"`
}

// RemoteService is the authoritative backend the widget talks to. The widget
// only ever consumes it through this port; transport lives in an adapter.
type RemoteService interface {
	SignUp(ctx context.Context, username, password, level string) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (token string, err error)

	Today(ctx context.Context, token string) (*TodayPayload, error)

	// Complete marks today's routine done. success is false when the server
	// rejects the completion (already done, validation), with err carrying
	// the reason where the server provides one.
	Complete(ctx context.Context, token string) (success bool, err error)

	// Calendar returns the user's completed days, restricted to the given
	// YYYY-MM month, or the full history when month is empty.
	Calendar(ctx context.Context, token, month string) ([]string, error)

	Me(ctx context.Context, token string) (*ProfilePayload, error)
}
