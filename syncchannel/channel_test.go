// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package syncchannel_test

import (
	"testing"
	"time"

	"github.com/arcanefold/gba-supervisor/syncchannel"
	"github.com/arcanefold/gba-supervisor/test"
)

func TestWaitFrameStartNoConsumer(t *testing.T) {
	c := syncchannel.NewChannel()

	f := c.WaitFrameStart(0)
	defer f.Close()
	test.ExpectFailure(t, f.Ok)
}

func TestFrameHandshake(t *testing.T) {
	c := syncchannel.NewChannel()
	c.ResumeDrawing()

	// start the consumer first and give it time to park in WaitFrameStart's
	// select before posting a frame, so the producer's broadcast isn't
	// issued before anyone is listening for it.
	result := make(chan *syncchannel.VideoFrame)
	go func() {
		result <- c.WaitFrameStart(0)
	}()
	time.Sleep(10 * time.Millisecond)

	posted := make(chan struct{})
	go func() {
		c.PostFrame()
		close(posted)
	}()

	f := <-result
	test.ExpectSuccess(t, f.Ok)
	f.Close()

	// the producer stays parked until a later WaitFrameStart wakes it; the
	// signal issued on opening this second frame releases it
	f2 := c.WaitFrameStart(0)

	select {
	case <-posted:
	case <-time.After(2 * time.Second):
		t.Fatal("producer never returned from PostFrame")
	}
	f2.Close()
}

func TestSuspendDrawingUnblocksProducer(t *testing.T) {
	c := syncchannel.NewChannel()
	c.ResumeDrawing()

	// saturate the skip counter at zero so the very first PostFrame blocks
	blocked := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(blocked)
		c.PostFrame()
		close(done)
	}()

	<-blocked
	// give the producer a moment to actually enter PostFrame's wait loop
	time.Sleep(10 * time.Millisecond)
	c.SuspendDrawing()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SuspendDrawing did not unblock a parked producer")
	}
}

func TestAudioHandshake(t *testing.T) {
	c := syncchannel.NewChannel()
	c.SetAudioWait(true)

	produced := make(chan struct{})
	go func() {
		c.BeginProduce()
		c.ProduceAudio(true)
		close(produced)
	}()

	time.Sleep(10 * time.Millisecond)
	c.LockAudio()
	c.ConsumeAudio()

	select {
	case <-produced:
	case <-time.After(2 * time.Second):
		t.Fatal("ConsumeAudio did not unblock ProduceAudio")
	}
}

func TestEndUnblocksBoth(t *testing.T) {
	c := syncchannel.NewChannel()
	c.ResumeDrawing()
	c.SetAudioWait(true)

	videoDone := make(chan struct{})
	audioDone := make(chan struct{})

	go func() {
		c.PostFrame()
		close(videoDone)
	}()
	go func() {
		c.BeginProduce()
		c.ProduceAudio(true)
		close(audioDone)
	}()

	time.Sleep(10 * time.Millisecond)
	c.End()

	select {
	case <-videoDone:
	case <-time.After(2 * time.Second):
		t.Fatal("End did not unblock a parked video producer")
	}
	select {
	case <-audioDone:
	case <-time.After(2 * time.Second):
		t.Fatal("End did not unblock a parked audio producer")
	}
}
