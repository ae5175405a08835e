// Package planjson loads Terraform plan JSON documents into an
// order-preserving value tree and extracts the planned resources from them.
//
// encoding/json unmarshals objects into Go maps, which lose the key order of
// the source document. Attribute tables must list parameters in the order the
// plan emits them, so this package decodes through the json.Decoder token
// stream into a Value tree whose object entries keep insertion order.
//
// The package also reads the `configuration` section of a plan to build
// reference hints: attribute paths whose concrete value is unknown at plan
// time but whose target resource is statically known.
package planjson
