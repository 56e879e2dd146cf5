/*
Package bank implements the value-transfer primitive consumed by the
custody modules.

It keeps one integer balance per identity and can atomically move an
amount between two accounts. A move either fully succeeds or leaves
both accounts untouched. Callers that combine a move with other state
changes should run everything inside one store cache wrap.
*/
package bank
