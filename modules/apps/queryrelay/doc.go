/*
Package queryrelay implements an IBC application that forwards read-only queries to the
chain at the other end of a channel and returns their results in the acknowledgement.

A query packet carries an ordered batch of queries, each a fully-qualified query path
and its binary request. The receiving chain answers every query of the batch
independently: a query that cannot be routed, or whose handler fails, is reported as a
failed result without affecting the others. The acknowledgement is an error only when
the packet itself cannot be decoded.

Channels are unordered and use the fixed version "queryrelay-1".

The module has no generated protobuf services, so AppModule does not implement
RegisterServices. The host application calls the message server returned by
keeper.NewMsgServerImpl and the keeper's query methods directly.
*/
package queryrelay
