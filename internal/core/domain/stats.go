package domain

// TodayWorkout is the payload behind GET /workout/today.
type TodayWorkout struct {
	Level     string `json:"level"`
	Routine   string `json:"routine"`
	Completed bool   `json:"completed"`
	Day       string `json:"day"`
}

// Profile is the payload behind GET /user/me.
type Profile struct {
	Username         string `json:"username"`
	Level            string `json:"level"`
	StartedAt        string `json:"startedAt"`
	MonthlyCompleted int    `json:"monthlyCompleted"`
	TotalCompleted   int    `json:"totalCompleted"`
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
}
