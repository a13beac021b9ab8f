// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package csp provides CSP-style channels and cooperatively scheduled
// processes via algebraic effects on [code.hybscloud.com/kont].
//
// A process is an effectful computation whose effects are channel
// operations. The [Scheduler] evaluates processes one effect at a time on a
// single goroutine; an operation that cannot complete parks the process until
// a later turn instead of blocking.
//
// # Architecture
//
//   - Storage: [Deque] backs the [Blocking], [Dropping] and [Sliding] buffers.
//   - Channels: [Chan] pairs a buffer with an optional put-side transducer from [code.hybscloud.com/csp/xf].
//   - Non-blocking: Operations return [code.hybscloud.com/iox.ErrWouldBlock] to park.
//   - Submission: [Go], [GoExpr] and the async operations may be called from any goroutine; they never block and reach the scheduler through a lock-free MPSC inbox ([code.hybscloud.com/lfq]), spilling to a locked overflow queue while it is full.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and defunctionalized (Expr-world) processes.
//
// # API Topologies
//
//   - Operations: [Take], [Put], [Close], [Alts]. Step functions: [TakeStep], [PutStep], [AltsStep].
//   - Cont-world: [TakeBind], [PutThen], [PutBind], [CloseThen], [CloseDone], [AltsBind].
//   - Expr-world: [ExprTakeBind], [ExprPutThen], [ExprPutBind], [ExprCloseThen], [ExprCloseDone], [ExprAltsBind]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for iterative processes.
//   - Futures: [TakeAsync], [PutAsync], [AltsAsync] for callers outside any process.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate a process one operation at a time for an external loop.
//   - Scheduling: [Scheduler.Tick], [Scheduler.Run] and [Scheduler.RunUntilIdle] drive spawned processes.
//   - Blocking: [Exec] and [Run] (and Expr variants) run processes to completion on a private scheduler.
//
// # Example
//
//	s := csp.NewScheduler()
//	ch := csp.NewChan[int](1)
//	csp.Go(s, csp.PutThen(ch, 42, csp.CloseDone(ch, struct{}{})))
//	got := csp.Go(s, csp.TakeBind(ch, func(r csp.Received[int]) kont.Eff[int] {
//		return kont.Pure(r.Value)
//	}))
//	s.RunUntilIdle()
//	v, _ := got.Take() // 42
package csp
