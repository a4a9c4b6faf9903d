// Package schema models the resolved type graph handed over by the schema
// front end.
//
// The graph is read-only: parsing, semantic validation, and layout
// computation all happen upstream. This package only defines the node
// surface the generator consumes — composite types with their version,
// ordered attribute lists, and, for services, distinct request and response
// sides — plus [Load], which decodes the serialized form the front end
// writes.
package schema
