package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madenai/arqflow/pkg/api/v1/handlers"
)

// Flag names
const (
	flagName        = "name"
	flagDescription = "description"
	flagProjectType = "project-type"
	flagTotalArea   = "total-area"
	flagFileURL     = "file-url"
	flagPage        = "page"
)

// GetProjectsCmd returns the projects command group
func GetProjectsCmd() *cobra.Command {
	return projectsCmd
}

func init() {
	projectsCmd.AddCommand(createProjectCmd)
	projectsCmd.AddCommand(getProjectCmd)
	projectsCmd.AddCommand(listProjectsCmd)
	projectsCmd.AddCommand(deleteProjectCmd)

	// Add flags for create
	createProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	createProjectCmd.Flags().StringP(flagDescription, "d", "", "Project description")
	createProjectCmd.Flags().String(flagProjectType, "", "Project type (e.g. residencial, comercial)")
	createProjectCmd.Flags().Float64(flagTotalArea, 0, "Total built area in m²")
	createProjectCmd.Flags().String(flagFileURL, "", "URL of the uploaded project file")
	if err := createProjectCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create project command: %w", err))
	}

	// Add flags for get
	getProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	if err := getProjectCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for get project command: %w", err))
	}

	// Add flags for list
	listProjectsCmd.Flags().IntP(flagPage, "p", 1, "Page number for pagination")

	// Add flags for delete
	deleteProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	if err := deleteProjectCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for delete project command: %w", err))
	}
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Register an uploaded project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}
		projectType, err := cmd.Flags().GetString(flagProjectType)
		if err != nil {
			return fmt.Errorf("error getting project-type flag: %w", err)
		}
		totalArea, err := cmd.Flags().GetFloat64(flagTotalArea)
		if err != nil {
			return fmt.Errorf("error getting total-area flag: %w", err)
		}
		fileURL, err := cmd.Flags().GetString(flagFileURL)
		if err != nil {
			return fmt.Errorf("error getting file-url flag: %w", err)
		}

		project, err := apiClient.CreateProject(context.Background(), handlers.ProjectCreateParams{
			Name:        name,
			Description: description,
			ProjectType: projectType,
			TotalArea:   totalArea,
			FileURL:     fileURL,
		})
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		return printJSON(project)
	},
}

var getProjectCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a project by name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}

		project, err := apiClient.GetProject(context.Background(), handlers.ProjectGetParams{Name: name})
		if err != nil {
			return fmt.Errorf("error getting project: %w", err)
		}

		return printJSON(project)
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		page, err := cmd.Flags().GetInt(flagPage)
		if err != nil {
			return fmt.Errorf("error getting page flag: %w", err)
		}

		projects, err := apiClient.ListProjects(context.Background(), handlers.ProjectListParams{Page: page})
		if err != nil {
			return fmt.Errorf("error listing projects: %w", err)
		}

		return printJSON(projects)
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a project by name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}

		if err := apiClient.DeleteProject(context.Background(), handlers.ProjectDeleteParams{Name: name}); err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}

		fmt.Printf("Project %q deleted\n", name)
		return nil
	},
}
