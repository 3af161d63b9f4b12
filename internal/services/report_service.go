package services

import "farmstead/internal/models"

// ReportSummary is the dashboard roll-up: task counts by status, items that
// need restocking and the equipment fleet by status.
type ReportSummary struct {
	Tasks     TaskSummary      `json:"tasks"`
	Inventory InventorySummary `json:"inventory"`
	Equipment EquipmentSummary `json:"equipment"`
}

type TaskSummary struct {
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	ByStatus  map[string]int `json:"by_status"`
}

type InventorySummary struct {
	Total    int                    `json:"total"`
	LowStock []models.InventoryItem `json:"low_stock"`
}

type EquipmentSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// BuildReportSummary assembles the summary from already owner-scoped lists.
func BuildReportSummary(tasks []models.Task, items []models.InventoryItem, equipment []models.EquipmentItem) ReportSummary {
	summary := ReportSummary{
		Tasks: TaskSummary{
			Total:    len(tasks),
			ByStatus: make(map[string]int),
		},
		Inventory: InventorySummary{
			Total:    len(items),
			LowStock: make([]models.InventoryItem, 0),
		},
		Equipment: EquipmentSummary{
			Total:    len(equipment),
			ByStatus: make(map[string]int),
		},
	}

	for _, task := range tasks {
		summary.Tasks.ByStatus[task.Status]++
		if task.Completed {
			summary.Tasks.Completed++
		}
	}

	for _, item := range items {
		if item.Status == models.InventoryStatusLow {
			summary.Inventory.LowStock = append(summary.Inventory.LowStock, item)
		}
	}

	for _, machine := range equipment {
		summary.Equipment.ByStatus[machine.Status]++
	}

	return summary
}
