// Package services contains stateless domain services operating across the
// shipment aggregate:
//
//   - EscrowReleaseEvaluator: decides whether escrowed funds may be
//     released for a shipment, applying a strict priority order so that an
//     active dispute or a missed shipping SLA always vetoes release.
//   - TimelineBuilder: projects a shipment (or its absence) into an
//     ordered milestone sequence for display.
//
// Both services are pure: they take every input, including the evaluation
// instant, as a parameter and touch no external state.
package services
