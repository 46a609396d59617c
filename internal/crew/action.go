// Package crew defines the project roles and the actions each role can perform.
package crew

import "errors"

// Action identifies a single parameterless operation an actor performs.
type Action string

const (
	BuildUI       Action = "build-ui"
	BuildDatabase Action = "build-database"
	BuildDesign   Action = "build-design"
	InitRepo      Action = "init-repo"
	RunTests      Action = "run-tests"
	Debug         Action = "debug"
	Deploy        Action = "deploy"

	BuildResponsiveUI   Action = "build-responsive-ui"
	OptimizePerformance Action = "optimize-performance"
	IntegrateAPI        Action = "integrate-api"

	BuildAPI                 Action = "build-api"
	ManageDatabase           Action = "manage-database"
	IntegrateExternalService Action = "integrate-external-service"

	CreatePlan      Action = "create-plan"
	ManageBudget    Action = "manage-budget"
	CommunicatePlan Action = "communicate-plan"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKind   = errors.New("unknown crew kind")
)

// BaseActions is the menu every actor supports, in declaration order.
var BaseActions = []Action{BuildUI, BuildDatabase, BuildDesign, InitRepo, RunTests, Debug, Deploy}

// phrases maps an action to the verb phrase used in its trace line.
type phrases map[Action]string

var basePhrases = phrases{
	BuildUI:       "Creating User Interface",
	BuildDatabase: "Creating Database",
	BuildDesign:   "Creating User Interface Design",
	InitRepo:      "Creating Git Repository",
	RunTests:      "Testing",
	Debug:         "Debugging",
	Deploy:        "Deploying Website",
}

var frontendPhrases = basePhrases.extend(phrases{
	BuildResponsiveUI:   "Creating Responsive UI",
	OptimizePerformance: "Optimizing Website Performance and Speed",
	IntegrateAPI:        "Integrating API from Backend to Website",
	RunTests:            "Testing UI Functionality, Responsiveness, and Accesibility",
	Deploy:              "Deploying Changes to Website",
})

var backendPhrases = basePhrases.extend(phrases{
	BuildAPI:                 "Creating API",
	ManageDatabase:           "Managing Database",
	IntegrateExternalService: "Connecting Website with External Services",
	RunTests:                 "Testing API Functionality, Database Performance, and Security",
	Deploy:                   "Deploying Changes to Website",
})

var managerPhrases = basePhrases.extend(phrases{
	CreatePlan:      "Creating The Project Plan",
	ManageBudget:    "Managing Project Budget",
	CommunicatePlan: "Conveying The Project Plan to the Team",
})

// extend returns a new table holding p with the entries of over layered on top.
func (p phrases) extend(over phrases) phrases {
	out := make(phrases, len(p)+len(over))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
