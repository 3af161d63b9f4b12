package api

// Create payloads carry plain values; patch payloads use pointers so an
// absent field is distinguishable from a zero value.

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type taskCreatePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	Assignee    string `json:"assignee"`
	Recurrence  string `json:"recurrence"`
}

type taskPatchPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
	Assignee    *string `json:"assignee"`
	Recurrence  *string `json:"recurrence"`
}

type inventoryCreatePayload struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Threshold float64 `json:"threshold"`
}

type inventoryPatchPayload struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit"`
	Threshold *float64 `json:"threshold"`
}

type equipmentCreatePayload struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastUsed    string `json:"last_used"`
	Assignee    string `json:"assignee"`
	NextService string `json:"next_service"`
}

type equipmentPatchPayload struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	LastUsed    *string `json:"last_used"`
	Assignee    *string `json:"assignee"`
	NextService *string `json:"next_service"`
}

type contactCreatePayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type contactPatchPayload struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

type weatherPreferencePayload struct {
	Location string `json:"location"`
	Units    string `json:"units"`
}
