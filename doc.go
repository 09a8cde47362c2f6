// Package patrimonio is a deterministic retirement and wealth-succession
// planning engine. Given a client's assets, contribution plan, goals and
// macro assumptions it projects wealth month by month, derives the
// retirement-income KPIs, estimates succession (inheritance) costs, and
// reconciles the plan against actually-reported monthly results.
//
// The core pieces:
//   - Aggregation: multi-currency assets converted to BRL and bucketed into
//     financial, illiquid and retirement-wrapper (previdência) totals.
//   - Contribution resolution: overlapping time-ranged rules collapsed into
//     the single effective monthly cash flow for an age.
//   - Simulation: a monthly-stepped projection from the current age to the
//     life-expectancy age, compounding at the inflation-adjusted (real) rate,
//     with goals, one-time inflows and an optional stress scenario.
//   - Succession: transfer-tax, legal and administrative cost estimate over
//     the estate, and the liquidity gap heirs would face.
//   - Tracking: plan-vs-actual reconciliation that re-anchors the projection
//     to the reported history.
//
// Every operation is a pure, in-memory function of its inputs: no I/O, no
// retained state, no fatal errors in normal operation. The engine always
// produces a best-effort, internally consistent snapshot; input validation
// belongs to the surrounding application.
//
// This package serves as the foundational logic for the `psim` command-line
// tool.
package patrimonio
