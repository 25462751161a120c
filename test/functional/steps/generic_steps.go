package steps

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response, "no request was sent")
	fc.require.Equal(code, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) theResponseContentTypeShouldContain(contentType string) error {
	fc.require.Contains(fc.response.Header.Get("Content-Type"), contentType)
	return nil
}

func (fc *FeatureContext) theResponseBodyShouldContain(text string) error {
	fc.require.Contains(string(fc.responseBody), text)
	return nil
}

func (fc *FeatureContext) theResponseBodyShouldNotContain(text string) error {
	fc.require.NotContains(string(fc.responseBody), text)
	return nil
}
