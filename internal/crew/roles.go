package crew

import "sitecrew/internal/core"

const (
	RoleDeveloper = "Developer"
	RoleFrontend  = "Frontend Developer"
	RoleBackend   = "Backend Developer"
	RoleManager   = "Project Manager"
)

// FrontendDeveloper adds client-side work to the base menu.
type FrontendDeveloper interface {
	Developer
	CreateResponsiveUI()
	WebsiteOptimization()
	APIIntegration()
}

// BackendDeveloper adds server-side work to the base menu.
type BackendDeveloper interface {
	Developer
	CreateAPI()
	ManageDB()
	ThirdPartyServiceIntegration()
}

// Planner adds project planning to the base menu.
type Planner interface {
	Developer
	CreateProjectPlan()
	ManageBudget()
	CommunicateProjectPlan()
}

// Frontend overrides Testing and Deploy with client-side phrasing.
type Frontend struct {
	actor
}

func NewFrontend(name string, rep core.Reporter) *Frontend {
	return &Frontend{actor: newActor(name, RoleFrontend, frontendPhrases, rep)}
}

func (f *Frontend) CreateResponsiveUI()  { f.emit(BuildResponsiveUI) }
func (f *Frontend) WebsiteOptimization() { f.emit(OptimizePerformance) }
func (f *Frontend) APIIntegration()      { f.emit(IntegrateAPI) }

// Backend overrides Testing and Deploy with server-side phrasing.
type Backend struct {
	actor
}

func NewBackend(name string, rep core.Reporter) *Backend {
	return &Backend{actor: newActor(name, RoleBackend, backendPhrases, rep)}
}

func (b *Backend) CreateAPI()                    { b.emit(BuildAPI) }
func (b *Backend) ManageDB()                     { b.emit(ManageDatabase) }
func (b *Backend) ThirdPartyServiceIntegration() { b.emit(IntegrateExternalService) }

// Manager keeps every base action as is. Team size is stored but never
// rendered into a trace line.
type Manager struct {
	actor
	teamSize int
}

func NewManager(name string, teamSize int, rep core.Reporter) *Manager {
	return &Manager{actor: newActor(name, RoleManager, managerPhrases, rep), teamSize: teamSize}
}

func (m *Manager) TeamSize() int { return m.teamSize }

func (m *Manager) CreateProjectPlan()      { m.emit(CreatePlan) }
func (m *Manager) ManageBudget()           { m.emit(ManageBudget) }
func (m *Manager) CommunicateProjectPlan() { m.emit(CommunicatePlan) }

var (
	_ Developer         = (*Engineer)(nil)
	_ FrontendDeveloper = (*Frontend)(nil)
	_ BackendDeveloper  = (*Backend)(nil)
	_ Planner           = (*Manager)(nil)
)
