package orchestration

import (
	"context"
	"testing"

	g "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/imamik/ghlabels/internal/label"
	"github.com/imamik/ghlabels/internal/reconcile"
)

// TestFleetSuite is the entry point for the Ginkgo fleet specs.
func TestFleetSuite(t *testing.T) {
	RegisterFailHandler(g.Fail)
	g.RunSpecs(t, "Fleet Suite")
}

var _ = g.Describe("Fleet", func() {
	var (
		ctx  context.Context
		gw   *mockGateway
		repo label.Repository
	)

	g.BeforeEach(func() {
		ctx = context.Background()
		gw = new(mockGateway)
		repo = repository("octo/hello")
		gw.On("GetRepository", mock.Anything, "octo", "hello").Return(repo, nil)
	})

	g.Context("when the repository already matches the template", func() {
		g.BeforeEach(func() {
			gw.On("ListLabels", mock.Anything, repo).Return([]label.Label{
				observed(repo, "wip", "ffff00"),
				observed(repo, "bug", "ff0000"),
			}, nil)
		})

		g.It("reports no changes", func() {
			report, err := NewFleet(gw, reconcile.Flags{}).Run(ctx, Scope{Owner: "octo", Repo: "hello"}, desiredLabels)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Lines()).To(Equal([]string{"octo/hello", NoChanges}))
		})
	})

	g.Context("when labels drift", func() {
		var current []label.Label

		g.BeforeEach(func() {
			current = []label.Label{observed(repo, "bug", "00ff00"), observed(repo, "stale", "0000ff")}
			gw.On("ListLabels", mock.Anything, repo).Return(current, nil)
		})

		g.It("keeps deletions out when deletes are disabled", func() {
			gw.On("CreateLabel", mock.Anything, mock.Anything, repo).Return(label.Label{}, nil)
			gw.On("UpdateLabel", mock.Anything, mock.Anything).Return(label.Label{}, nil)

			report, err := NewFleet(gw, reconcile.Flags{NoDelete: true}).
				Run(ctx, Scope{Owner: "octo", Repo: "hello"}, desiredLabels)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Lines()).To(Equal([]string{"octo/hello", "CREATE wip: ffff00", "UPDATE bug: ff0000"}))
			gw.AssertNotCalled(g.GinkgoT(), "DeleteLabel", mock.Anything, mock.Anything)
		})

		g.It("skips creates and updates when creates are disabled", func() {
			gw.On("DeleteLabel", mock.Anything, current[1]).Return(nil)

			report, err := NewFleet(gw, reconcile.Flags{NoCreate: true}).
				Run(ctx, Scope{Owner: "octo", Repo: "hello"}, desiredLabels)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Lines()).To(Equal([]string{"octo/hello", "DELETE stale: 0000ff"}))
			gw.AssertNotCalled(g.GinkgoT(), "UpdateLabel", mock.Anything, mock.Anything)
		})

		g.It("converges after one applied run", func() {
			plans := NewFleet(gw, reconcile.Flags{DryRun: true}).Plan(ctx, []label.Repository{repo}, desiredLabels)
			Expect(plans).To(HaveLen(1))

			batch := plans[0].Batch
			next := append([]label.Label{}, batch.ToCreate...)
			next = append(next, batch.ToUpdate...)
			Expect(reconcile.Plan(desiredLabels, next, reconcile.Flags{}).Empty()).To(BeTrue())
		})
	})
})
