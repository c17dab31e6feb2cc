/*
Package logger provides logging functionality to a trailhead app by defining the required behavior in [Logger]
and providing an implementation of it with [TrailLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [TrailLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*TrailLogger.Warn], [*TrailLogger.Error], and [*TrailLogger.Fatal] produce messages.

# TrailLogger

The [TrailLogger] provides all the logging functionality needed for a trailhead app.
It is the implementation of [Logger] returned by the [New] function
when Sentry is not configured.

Log messages emitted by [TrailLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] router/router.go:143 'registered GET /users/{id}' log_context: {"route":"/users/{id}"}

The file, line number, and parent directory of where a [TrailLogger] was called comprise the call site.
The message is the actual string passed into the [TrailLogger] method, in this example, [*TrailLogger.Debug].
Lastly, the log context is a JSON-encoded [*LogContext].

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
