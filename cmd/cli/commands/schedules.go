package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madenai/arqflow/pkg/api/v1/handlers"
)

// Flag names
const (
	flagStartDate = "start-date"
	flagTaskID    = "task-id"
	flagDuration  = "duration"
	flagStatus    = "status"
	flagCost      = "cost"
	flagCategory  = "category"
)

// GetSchedulesCmd returns the schedules command group
func GetSchedulesCmd() *cobra.Command {
	return schedulesCmd
}

func init() {
	schedulesCmd.AddCommand(generateScheduleCmd)
	schedulesCmd.AddCommand(getScheduleCmd)
	schedulesCmd.AddCommand(updateScheduleTaskCmd)
	schedulesCmd.AddCommand(addScheduleTaskCmd)

	for _, cmd := range []*cobra.Command{generateScheduleCmd, getScheduleCmd, updateScheduleTaskCmd, addScheduleTaskCmd} {
		cmd.Flags().UintP(flagProjectID, "i", 0, "Project ID")
		if err := cmd.MarkFlagRequired(flagProjectID); err != nil {
			panic(fmt.Errorf("failed to mark project-id flag as required for schedule command: %w", err))
		}
	}

	// Add flags for generate
	generateScheduleCmd.Flags().String(flagStartDate, "", "Chain start date (YYYY-MM-DD, default today)")

	// Add flags for update-task
	updateScheduleTaskCmd.Flags().String(flagTaskID, "", "Schedule task ID")
	updateScheduleTaskCmd.Flags().Int(flagDuration, 0, "New duration in days")
	updateScheduleTaskCmd.Flags().String(flagStatus, "", "New status (planned, in-progress, completed)")
	updateScheduleTaskCmd.Flags().String(flagStartDate, "", "New start date for the first task (YYYY-MM-DD)")
	if err := updateScheduleTaskCmd.MarkFlagRequired(flagTaskID); err != nil {
		panic(fmt.Errorf("failed to mark task-id flag as required for update schedule task command: %w", err))
	}

	// Add flags for add-task
	addScheduleTaskCmd.Flags().StringP(flagName, "n", "", "Task name")
	addScheduleTaskCmd.Flags().String(flagCategory, "", "Task category")
	addScheduleTaskCmd.Flags().Int(flagDuration, 0, "Task duration in days")
	addScheduleTaskCmd.Flags().Float64(flagCost, 0, "Task cost")
	for _, f := range []string{flagName, flagDuration} {
		if err := addScheduleTaskCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for add schedule task command: %w", f, err))
		}
	}
}

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Manage project schedules",
}

var generateScheduleCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a phase schedule chained from the start date",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		startDate, err := cmd.Flags().GetString(flagStartDate)
		if err != nil {
			return fmt.Errorf("error getting start-date flag: %w", err)
		}

		schedule, err := apiClient.GenerateSchedule(context.Background(), handlers.ScheduleGenerateParams{
			ProjectID: projectID,
			StartDate: startDate,
		})
		if err != nil {
			return fmt.Errorf("error generating schedule: %w", err)
		}

		return printJSON(schedule)
	},
}

var getScheduleCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a project's schedule",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}

		schedule, err := apiClient.GetSchedule(context.Background(), handlers.ScheduleGetParams{ProjectID: projectID})
		if err != nil {
			return fmt.Errorf("error getting schedule: %w", err)
		}

		return printJSON(schedule)
	},
}

var updateScheduleTaskCmd = &cobra.Command{
	Use:   "update-task",
	Short: "Edit one task; downstream phases are re-chained",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		taskID, err := cmd.Flags().GetString(flagTaskID)
		if err != nil {
			return fmt.Errorf("error getting task-id flag: %w", err)
		}

		params := handlers.ScheduleUpdateTaskParams{
			ProjectID: projectID,
			TaskID:    taskID,
		}
		if cmd.Flags().Changed(flagDuration) {
			duration, err := cmd.Flags().GetInt(flagDuration)
			if err != nil {
				return fmt.Errorf("error getting duration flag: %w", err)
			}
			params.Duration = &duration
		}
		if cmd.Flags().Changed(flagStatus) {
			status, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return fmt.Errorf("error getting status flag: %w", err)
			}
			params.Status = &status
		}
		if cmd.Flags().Changed(flagStartDate) {
			startDate, err := cmd.Flags().GetString(flagStartDate)
			if err != nil {
				return fmt.Errorf("error getting start-date flag: %w", err)
			}
			params.StartDate = &startDate
		}

		schedule, err := apiClient.UpdateScheduleTask(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error updating schedule task: %w", err)
		}

		return printJSON(schedule)
	},
}

var addScheduleTaskCmd = &cobra.Command{
	Use:   "add-task",
	Short: "Append a task to the end of the chain",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}
		category, err := cmd.Flags().GetString(flagCategory)
		if err != nil {
			return fmt.Errorf("error getting category flag: %w", err)
		}
		duration, err := cmd.Flags().GetInt(flagDuration)
		if err != nil {
			return fmt.Errorf("error getting duration flag: %w", err)
		}
		cost, err := cmd.Flags().GetFloat64(flagCost)
		if err != nil {
			return fmt.Errorf("error getting cost flag: %w", err)
		}

		schedule, err := apiClient.AddScheduleTask(context.Background(), handlers.ScheduleAddTaskParams{
			ProjectID: projectID,
			Name:      name,
			Category:  category,
			Duration:  duration,
			Cost:      cost,
		})
		if err != nil {
			return fmt.Errorf("error adding schedule task: %w", err)
		}

		return printJSON(schedule)
	},
}
