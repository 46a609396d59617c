package workflow_test

import (
	"fmt"

	"sitecrew/internal/core"
	"sitecrew/internal/crew"
	"sitecrew/internal/workflow"
)

func ExampleProjectPlan_Plan() {
	printer := core.ReporterFunc(func(e core.Event) { fmt.Println(e.Line) })

	plan := workflow.NewProjectPlan(crew.NewManager("Bob", 10, printer))
	plan.Plan()
	// Output:
	// Bob is Creating The Project Plan...
	// Bob is Managing Project Budget...
	// Bob is Conveying The Project Plan to the Team...
}

func ExampleBackendImprovement_Improve() {
	printer := core.ReporterFunc(func(e core.Event) { fmt.Println(e.Line) })

	workflow.NewBackendImprovement(crew.NewBackend("Jane", printer)).Improve()
	// Output:
	// Jane is Creating API...
	// Jane is Managing Database...
	// Jane is Connecting Website with External Services...
	// Jane is Testing API Functionality, Database Performance, and Security...
	// Jane is Debugging...
	// Jane is Deploying Changes to Website...
}
