package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.keep(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) iCallTheReadyzEndpoint() error {
	return fc.keep(fc.apiDriver.GetReadyz())
}
