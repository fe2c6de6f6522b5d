package model

// Organization is the tenant every other entity is scoped to.
type Organization struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}
