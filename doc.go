// Package flightplan provides a set of functions and types for projecting a
// personal financial trajectory through major life decisions. It is designed
// to be local-first, auditable, and extensible, keeping every plan in plain
// files the user fully controls.
//
// The core functionalities include:
//   - Scenario Management: Recording a financial profile and the dated life
//     milestones (marriage, home or vehicle purchases, children, education,
//     one-time and recurring costs) that shape a plan, in a chronological
//     record.
//   - Projection Engine: A stateless engine that lowers milestones into
//     dated cash-flow effects and walks them month by month to produce
//     income, expense, tax, savings and net-worth series.
//   - Tax and Loan Modelling: Federal tax brackets, FICA contributions and
//     amortized loan schedules applied consistently across scenarios.
//   - Scenario Comparison: Side-by-side evaluation of alternative plans on
//     final net worth, lowest cash point, total taxes and savings rate.
//   - Data Persistence: Handling the encoding and decoding of scenarios
//     to and from human-readable, version-controllable formats (JSONL).
//
// This package serves as the foundational logic for the `fp` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package flightplan
