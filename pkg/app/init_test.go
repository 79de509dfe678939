package app

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/promptgate/promptgate/mocks"
)

const testModelsURL = "https://remote/models.yaml"

var modelsData = []byte("test_models")

func Test_loadModelsConfig_local(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	dir := t.TempDir()
	modelsFile := dir + "/models.yaml"
	err := os.WriteFile(modelsFile, modelsData, 0644)
	g.Expect(err).ToNot(HaveOccurred())

	c.EXPECT().ModelsURI().Return(modelsFile).Once()
	got := loadModelsConfig(c, nil)

	g.Expect(got).To(Equal(modelsData))
	c.AssertExpectations(t)
}

func Test_loadModelsConfig_remote(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	hc := new(mocks.HTTPClient)

	c.EXPECT().ModelsURI().Return(testModelsURL).Once()
	hc.EXPECT().Do(mock.Anything).RunAndReturn(func(req *http.Request) (*http.Response, error) {
		g.Expect(req.Method).To(Equal(http.MethodGet))
		g.Expect(req.URL.String()).To(Equal(testModelsURL))

		resp := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(modelsData))}
		return resp, nil
	}).Once()
	got := loadModelsConfig(c, hc)

	g.Expect(got).To(Equal(modelsData))
	c.AssertExpectations(t)
	hc.AssertExpectations(t)
}
