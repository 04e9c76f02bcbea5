/*
Package nav implements the reader's navigation state machine.

A Controller owns a ViewState (the post list or a single post) and keeps three
things in agreement: the state itself, the visible view of a Surface, and the
session History. Transitions triggered by the user push a history entry;
transitions triggered by back/forward only read it.

# Threading

The controller runs on a single UI loop. Content loads are the only
suspension points: they run on a background goroutine started through the
Scheduler and hand their result back to the loop as a continuation.

	loop := nav.NewLoop()
	ctrl := nav.New(surface, history, loader, loop, nav.Options{})
	ctrl.Bind(surface)
	ctrl.Start(ctx)
	_ = loop.Run(ctx)

# Rapid navigation

Every transition bumps a generation counter. A post body that arrives after
the user moved on is dropped, so the most recently requested post is always
the one left on screen.
*/
package nav
