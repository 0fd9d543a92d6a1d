package domain

// Stats is the dashboard summary, recomputed from the live collections on
// every request.
type Stats struct {
	Notifications ReadCounters `json:"notifications"`
	Messages      ReadCounters `json:"messages"`
	Tasks         TaskCounters `json:"tasks"`
}

type ReadCounters struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

type TaskCounters struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
}
