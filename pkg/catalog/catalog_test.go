package catalog_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/promptgate/promptgate/pkg/catalog"
)

const testCatalog = `
models:
  flash:
    upstream: gemini-2.0-flash-001
    description: fast default model
    default: true
  pro:
    upstream: gemini-2.5-pro
`

func TestYamlModelCatalog_Lookup(t *testing.T) {
	g := NewWithT(t)

	cat, err := catalog.NewYamlModelCatalog([]byte(testCatalog))
	g.Expect(err).ToNot(HaveOccurred())

	cfg, ok := cat.LookupModel("pro")
	g.Expect(ok).To(BeTrue())
	g.Expect(cfg.Upstream).To(Equal("gemini-2.5-pro"))

	// empty selector falls back to the default model
	cfg, ok = cat.LookupModel("")
	g.Expect(ok).To(BeTrue())
	g.Expect(cfg.Upstream).To(Equal("gemini-2.0-flash-001"))

	_, ok = cat.LookupModel("nope")
	g.Expect(ok).To(BeFalse())
}

func TestYamlModelCatalog_GetModels(t *testing.T) {
	g := NewWithT(t)

	cat, err := catalog.NewYamlModelCatalog([]byte(testCatalog))
	g.Expect(err).ToNot(HaveOccurred())

	models := cat.GetModels()
	g.Expect(models).To(HaveLen(2))
	g.Expect(models[0].Name).To(Equal("flash"))
	g.Expect(models[0].Default).To(BeTrue())
	g.Expect(models[1].Name).To(Equal("pro"))
	g.Expect(models[1].Default).To(BeFalse())
}

func TestYamlModelCatalog_Invalid(t *testing.T) {
	g := NewWithT(t)

	_, err := catalog.NewYamlModelCatalog([]byte(`models: {}`))
	g.Expect(err).To(HaveOccurred())

	_, err = catalog.NewYamlModelCatalog([]byte("models:\n  x: {}\n"))
	g.Expect(err).To(HaveOccurred())

	_, err = catalog.NewYamlModelCatalog([]byte("models:\n  a:\n    upstream: m1\n    default: true\n  b:\n    upstream: m2\n    default: true\n"))
	g.Expect(err).To(HaveOccurred())
}
