// Package schema models the NWB specification language: namespace
// declarations and group/dataset/attribute/link type definitions as they
// appear in *.namespace.yaml and *.extensions.yaml documents.
//
// The model is lossless for the subset of the dialect used by extension
// schemas: loading a document and saving it again yields a structurally
// equivalent document. Polymorphic fields of the dialect (dims, shape,
// dtype, quantity) carry custom YAML codecs.
package schema
