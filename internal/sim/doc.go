// Package sim implements the entrepreneurial well-being model as a
// discrete-time dynamical system with stochastic forcing.
//
// Four non-negative stocks (motivation, strain, cumulative effort, progress)
// are advanced period by period. Flows each period are driven by stressor
// draws, recovery, effort, and performance, with five independent
// pseudo-random streams derived from a single base seed:
//
//   - [Parameters]: one founder profile, immutable for the duration of a run
//   - [Simulate]: advances the stocks across a horizon and samples a trajectory
//   - [Point]: an immutable per-period snapshot
//   - [Campaign]: repeats Simulate over N independent runs
//
// # Example
//
//	params := sim.DefaultParameters()
//	traj, _ := sim.Simulate(params, 500, 42)
//	last := traj[len(traj)-1]
//
// # Thread Safety
//
// A single run is strictly sequential: period t+1 depends on period t's
// closing stocks. Runs share no mutable state, so [Campaign] executes them
// on parallel goroutines without synchronization.
package sim
