package workflow

import "sitecrew/internal/crew"

// Project builds the website from scratch. Any developer will do.
type Project struct {
	developer crew.Developer
}

func NewProject(dev crew.Developer) *Project {
	return &Project{developer: dev}
}

func (p *Project) Build() {
	p.developer.CreateUI()
	p.developer.CreateDB()
	p.developer.CreateDesign()
	p.developer.CreateGit()
	p.developer.Testing()
	p.developer.Debugging()
	p.developer.Deploy()
}

func (p *Project) Name() string          { return string(KindBuild) }
func (p *Project) Run()                  { p.Build() }
func (p *Project) Actor() crew.Developer { return p.developer }
func (p *Project) Steps() []crew.Action {
	return []crew.Action{crew.BuildUI, crew.BuildDatabase, crew.BuildDesign, crew.InitRepo, crew.RunTests, crew.Debug, crew.Deploy}
}

// ProjectPlan has a manager lay out the project.
type ProjectPlan struct {
	manager crew.Planner
}

func NewProjectPlan(pm crew.Planner) *ProjectPlan {
	return &ProjectPlan{manager: pm}
}

func (p *ProjectPlan) Plan() {
	p.manager.CreateProjectPlan()
	p.manager.ManageBudget()
	p.manager.CommunicateProjectPlan()
}

func (p *ProjectPlan) Name() string          { return string(KindPlan) }
func (p *ProjectPlan) Run()                  { p.Plan() }
func (p *ProjectPlan) Actor() crew.Developer { return p.manager }
func (p *ProjectPlan) Steps() []crew.Action {
	return []crew.Action{crew.CreatePlan, crew.ManageBudget, crew.CommunicatePlan}
}
