/*
Package req provides ergonomics for handling an HTTP request.

A [Parser] parses payloads in an HTTP request.
It supports JSON-encoded payloads, payloads encoded in query parameters,
and the parameters a router captured from the request's path.
In each case, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct.
Second, for validating the payload's data meets requirements.

Path parameters can also be checked one at a time, as they are captured,
with the hooks [Int], [UUID], [OneOf], [Enum] and [Var] registered through router.Router.Param.

Notably, the parade of errors that may propagate from such tasks
are translated to trailhead sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
Failed validation always results in [ValidationErrors],
which a flow.ErrorResponder writes as a 400 with a JSON body.
Each [ValidationError] names the [Source] of the value: [Body], [Query] or [Path].
*/
package req
