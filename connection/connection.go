/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package connection

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
)

const (
	defaultReadBufferSize = 4096
)

// OFConnect accepts switch connections and exchanges messages with the
// most recent one. Received messages from every connection are delivered
// through Receive.
type OFConnect struct {
	listener net.Listener
	factory  *openflow.Factory
	readSize int

	queue     []openflow.Message
	queueMu   sync.Mutex
	queueCond sync.Cond

	conn     net.Conn
	connMu   sync.Mutex
	connCond sync.Cond

	receiveCh chan openflow.Message
}

func NewOFConnect(addr string, factory *openflow.Factory, readSize int) (*OFConnect, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("error listening on %q: %v", addr, err)
	}

	return newOFConnect(listener, factory, readSize), nil
}

func newOFConnect(listener net.Listener, factory *openflow.Factory, readSize int) *OFConnect {
	if readSize <= 0 {
		readSize = defaultReadBufferSize
	}
	of := &OFConnect{
		listener:  listener,
		factory:   factory,
		readSize:  readSize,
		receiveCh: make(chan openflow.Message),
	}

	of.queueCond.L = &of.queueMu
	of.connCond.L = &of.connMu
	return of
}

func (of *OFConnect) Addr() net.Addr {
	return of.listener.Addr()
}

func (of *OFConnect) Close() error {
	return of.listener.Close()
}

// Receive blocks until a message arrives from any connection.
func (of *OFConnect) Receive() openflow.Message {
	return <-of.receiveCh
}

// Send queues msg for the main connection. Messages queued before a
// connection exists are written once one is established.
func (of *OFConnect) Send(msg openflow.Message) {
	of.queueMu.Lock()
	defer of.queueMu.Unlock()

	of.queue = append(of.queue, msg)
	of.queueCond.Broadcast()
}

func (of *OFConnect) SetConnection(conn net.Conn) {
	of.connMu.Lock()
	defer of.connMu.Unlock()

	of.conn = conn
	of.connCond.Broadcast()
}

func (of *OFConnect) WriteConnection(msg openflow.Message) error {
	data, err := of.factory.Encode(msg)
	if err != nil {
		return fmt.Errorf("error encoding %s message: %v", msg.Kind(), err)
	}

	of.connMu.Lock()
	defer of.connMu.Unlock()

	if of.conn == nil {
		return errors.New("main connection not established yet")
	}

	_, err = of.conn.Write(data)
	return err
}

// ProcessQueue writes queued messages in order. It never returns.
func (of *OFConnect) ProcessQueue() {
	for {
		of.connMu.Lock()
		// don't start processing the queue until
		// a main connection is established
		for of.conn == nil {
			of.connCond.Wait()
		}
		of.connMu.Unlock()

		of.queueMu.Lock()
		for len(of.queue) == 0 {
			of.queueCond.Wait()
		}
		msg := of.queue[0]
		of.queue = of.queue[1:]
		of.queueMu.Unlock()

		if err := of.WriteConnection(msg); err != nil {
			klog.Errorf("error writing to connection: %v", err)
		}
	}
}

// Serve accepts connections until the listener is closed.
func (of *OFConnect) Serve() error {
	for {
		conn, err := of.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			klog.Errorf("error accepting TCP connections: %v", err)
			continue
		}

		klog.Infof("switch connected from %s", conn.RemoteAddr())
		of.SetConnection(conn)
		go of.handleConn(conn)
	}
}

func (of *OFConnect) handleConn(conn net.Conn) {
	defer conn.Close()

	err := ReadMessages(conn, of.factory, of.readSize, func(msg openflow.Message) {
		of.receiveCh <- msg
	})
	if err != nil {
		klog.Errorf("error reading connection from %s: %v", conn.RemoteAddr(), err)
		return
	}
	klog.Infof("switch at %s disconnected", conn.RemoteAddr())
}

// ReadMessages reads r in chunks of up to readSize bytes and calls handle
// for every message decoded, in stream order. Messages split across reads
// are held until complete. A message that fails to decode is logged and
// dropped; a malformed header ends the stream since the framing is lost.
// It returns nil when r reaches EOF on a message boundary.
func ReadMessages(r io.Reader, f *openflow.Factory, readSize int, handle func(openflow.Message)) error {
	if readSize <= 0 {
		readSize = defaultReadBufferSize
	}
	stream := buffer.Wrap(nil)
	chunk := make([]byte, readSize)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if aerr := stream.Append(chunk[:n]); aerr != nil {
				return aerr
			}
			if derr := drain(stream, f, handle); derr != nil {
				return derr
			}
			stream.Compact()
		}

		if err != nil {
			if err == io.EOF {
				if stream.Remaining() > 0 {
					return fmt.Errorf("stream ended inside a message: %v", io.ErrUnexpectedEOF)
				}
				return nil
			}
			return err
		}
	}
}

func drain(stream *buffer.Buffer, f *openflow.Factory, handle func(openflow.Message)) error {
	for {
		msgs, err := f.DecodeStream(stream)
		for _, msg := range msgs {
			handle(msg)
		}
		if err == nil {
			return nil
		}

		var malformed *openflow.MalformedHeaderError
		if errors.As(err, &malformed) {
			return err
		}
		klog.Errorf("dropping message: %v", err)
	}
}
