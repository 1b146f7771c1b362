package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/venturesim/internal/sim"
)

var _ = Describe("trajectory properties", func() {
	var params sim.Parameters

	BeforeEach(func() {
		params = sim.DefaultParameters()
	})

	It("is bit-identical for a fixed seed", func() {
		a, err := sim.Simulate(params, 250, 7)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Simulate(params, 250, 7)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("diverges across seeds", func() {
		a, _ := sim.Simulate(params, 250, 7)
		b, _ := sim.Simulate(params, 250, 8)
		Expect(a).NotTo(Equal(b))
	})

	It("keeps every recorded stock non-negative across many seeds", func() {
		for seed := int64(0); seed < 50; seed++ {
			traj, err := sim.Simulate(params, 100, seed)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range traj {
				Expect(p.Motivation).To(BeNumerically(">=", 0))
				Expect(p.Strain).To(BeNumerically(">=", 0))
				Expect(p.Performance).To(BeNumerically(">=", 0))
			}
		}
	})

	It("bounds effort by the var8 ceiling", func() {
		params.Coeffs.Var8 = 0.42
		for seed := int64(0); seed < 20; seed++ {
			traj, _ := sim.Simulate(params, 100, seed)
			for _, p := range traj {
				Expect(p.Effort).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<=", 0.42),
				))
			}
		}
	})

	It("degenerates cleanly with zero ambition", func() {
		params.Ambition = 0
		for seed := int64(0); seed < 20; seed++ {
			traj, err := sim.Simulate(params, 100, seed)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range traj {
				Expect(p.Challenge).To(BeZero())
				Expect(p.Hindrance).To(BeZero())
				Expect(p.Recovery).To(Equal(1.0))
			}
		}
	})
})

var _ = Describe("campaign", func() {
	It("produces one summary per run, in order", func() {
		c := sim.NewCampaign(sim.DefaultParameters(), 50, 500)
		summaries, err := c.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(summaries).To(HaveLen(50))
		for i, s := range summaries {
			Expect(s.Run).To(Equal(i))
		}
	})

	It("spreads terminal outcomes across independent seeds", func() {
		c := sim.NewCampaign(sim.DefaultParameters(), 30, 200)
		summaries, err := c.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		distinct := map[float64]bool{}
		for _, s := range summaries {
			distinct[s.Performance] = true
		}
		// Independent randomness: terminal performance should not collapse
		// onto a single value.
		Expect(len(distinct)).To(BeNumerically(">", 1))
	})
})
