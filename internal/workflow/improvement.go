package workflow

import "sitecrew/internal/crew"

// FrontendImprovement iterates on the client side of an existing site.
type FrontendImprovement struct {
	developer crew.FrontendDeveloper
}

func NewFrontendImprovement(dev crew.FrontendDeveloper) *FrontendImprovement {
	return &FrontendImprovement{developer: dev}
}

func (f *FrontendImprovement) Improve() {
	f.developer.CreateResponsiveUI()
	f.developer.WebsiteOptimization()
	f.developer.APIIntegration()
	f.developer.Testing()
	f.developer.Debugging()
	f.developer.Deploy()
}

func (f *FrontendImprovement) Name() string          { return string(KindImproveFrontend) }
func (f *FrontendImprovement) Run()                  { f.Improve() }
func (f *FrontendImprovement) Actor() crew.Developer { return f.developer }
func (f *FrontendImprovement) Steps() []crew.Action {
	return []crew.Action{crew.BuildResponsiveUI, crew.OptimizePerformance, crew.IntegrateAPI, crew.RunTests, crew.Debug, crew.Deploy}
}

// BackendImprovement iterates on the server side of an existing site.
type BackendImprovement struct {
	developer crew.BackendDeveloper
}

func NewBackendImprovement(dev crew.BackendDeveloper) *BackendImprovement {
	return &BackendImprovement{developer: dev}
}

func (b *BackendImprovement) Improve() {
	b.developer.CreateAPI()
	b.developer.ManageDB()
	b.developer.ThirdPartyServiceIntegration()
	b.developer.Testing()
	b.developer.Debugging()
	b.developer.Deploy()
}

func (b *BackendImprovement) Name() string          { return string(KindImproveBackend) }
func (b *BackendImprovement) Run()                  { b.Improve() }
func (b *BackendImprovement) Actor() crew.Developer { return b.developer }
func (b *BackendImprovement) Steps() []crew.Action {
	return []crew.Action{crew.BuildAPI, crew.ManageDatabase, crew.IntegrateExternalService, crew.RunTests, crew.Debug, crew.Deploy}
}
