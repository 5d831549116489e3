package analyzertests

func DoHealthCheckTest(t *T) {
	resp, err := t.API().HealthCheck(t.DebugLogger())
	if err != nil {
		t.Errorf("Error: %s", err)
		return
	}
	if resp.StatusCode != 200 {
		t.Errorf("Status: %d, Response: %s", resp.StatusCode, resp.BodyString())
		return
	}
	t.Detailf("Status: %d, Response: %s", resp.StatusCode, resp.BodyString())
}
