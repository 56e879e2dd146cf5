/*
Package vault defines the common primitives shared by the custody
modules: identities, and the progress counter carried through
context.Context.

The progress counter is an opaque, strictly increasing value supplied
by the host runtime (eg. block height). It is the only clock the
modules know about. There should exist two functions for every XYZ of
type T that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package vault
