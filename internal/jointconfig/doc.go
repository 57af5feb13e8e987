// Package jointconfig applies an initial joint configuration to a model of a
// running simulation.
//
// Configure is host-agnostic. A host hands it a Document and a World
// capability able to resolve a model by name, list the joints currently
// instantiated under it and set joint positions. Configure then validates
// the whole request and applies it in a single SetJointPositions call:
//
//   - the document must name a target model, and the world must know it;
//   - every joint entry must carry a non-empty name and a position;
//   - every requested name must match exactly one joint of the model.
//
// Any violation aborts the operation before the world is touched. Hosts are
// expected to treat the returned error as a fatal plugin initialization
// failure.
//
// Decode is the HCL binding: it reads a plugin body into a Document, and
// ConfigError locates failures with hcl ranges.
//
// # Duplicate entries
//
// When the same joint name is requested more than once, the last entry in
// document order wins. This lets a world file override a position declared
// earlier without editing it.
//
// # Nested models
//
// Joints of an included model are named relative to the model the request
// targets, e.g. "embedded_robot::a_joint" when targeting "super_robot". A
// configuration attached to the inner model definition cannot see those
// names, which is why the configurer is installed at world scope.
package jointconfig
