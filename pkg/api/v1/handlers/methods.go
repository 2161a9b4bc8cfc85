// Package handlers provides HTTP request handling
package handlers

// RPC method constants for standardized method naming
const (
	// Project methods
	ProjectCreate = "project.create"
	ProjectGet    = "project.get"
	ProjectList   = "project.list"
	ProjectDelete = "project.delete"

	// Budget methods
	BudgetGenerate   = "budget.generate"
	BudgetGet        = "budget.get"
	BudgetUpdateItem = "budget.updateItem"
	BudgetAddItem    = "budget.addItem"
	BudgetRemoveItem = "budget.removeItem"

	// Schedule methods
	ScheduleGenerate   = "schedule.generate"
	ScheduleGet        = "schedule.get"
	ScheduleUpdateTask = "schedule.updateTask"
	ScheduleAddTask    = "schedule.addTask"

	// Assistant methods
	AssistantChat = "assistant.chat"
)

// IsProjectMethod checks if the given method is a project operation
func IsProjectMethod(method string) bool {
	switch method {
	case ProjectCreate, ProjectGet, ProjectList, ProjectDelete:
		return true
	default:
		return false
	}
}

// IsBudgetMethod checks if the given method is a budget operation
func IsBudgetMethod(method string) bool {
	switch method {
	case BudgetGenerate, BudgetGet, BudgetUpdateItem, BudgetAddItem, BudgetRemoveItem:
		return true
	default:
		return false
	}
}

// IsScheduleMethod checks if the given method is a schedule operation
func IsScheduleMethod(method string) bool {
	switch method {
	case ScheduleGenerate, ScheduleGet, ScheduleUpdateTask, ScheduleAddTask:
		return true
	default:
		return false
	}
}

// IsAssistantMethod checks if the given method is an assistant operation
func IsAssistantMethod(method string) bool {
	return method == AssistantChat
}
