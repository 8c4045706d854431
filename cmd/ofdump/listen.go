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

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/k-vswitch/ofcodec/codec"
	"github.com/k-vswitch/ofcodec/connection"
	"github.com/k-vswitch/ofcodec/metrics"
	"github.com/k-vswitch/ofcodec/openflow"
)

func listenCmd(opts *options) *cobra.Command {
	var listenAddr, metricsAddr string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Accept switch connections and dump their messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.ListenAddr = listenAddr
			}
			if cmd.Flags().Changed("metrics") {
				cfg.MetricsAddr = metricsAddr
			}

			collector := metrics.NewCollector()
			factory := codec.NewFactory(openflow.WithObserver(collector))

			if cfg.MetricsAddr != "" {
				registry := prometheus.NewRegistry()
				registry.MustRegister(collector)
				go serveMetrics(cfg.MetricsAddr, registry)
			}

			of, err := connection.NewOFConnect(cfg.ListenAddr, factory, cfg.ReadBufferSize)
			if err != nil {
				return err
			}
			defer of.Close()
			klog.Infof("listening for switches on %s", of.Addr())

			// queued until the first switch connects
			of.Send(&openflow.Hello{
				Header:   openflow.Header{Version: cfg.HelloVersion},
				Elements: helloElements(cfg.HelloVersion),
			})
			of.Send(&openflow.FeaturesRequest{Header: openflow.Header{Version: cfg.HelloVersion, Xid: 1}})

			go of.ProcessQueue()
			go func() {
				if err := of.Serve(); err != nil {
					klog.Errorf("error serving switches: %v", err)
				}
			}()

			p := newPrinter(cmd.OutOrStdout(), cfg.Format, factory)
			for {
				msg := of.Receive()
				p.print(msg)
				p.flush()

				if reply := respond(msg, cfg.ReplyEcho); reply != nil {
					of.Send(reply)
				}
			}
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "address to accept switch connections on")
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "address to serve Prometheus metrics on")

	return cmd
}

func helloElements(v openflow.Version) []openflow.HelloElement {
	if v == openflow.Version10 {
		return nil
	}
	return []openflow.HelloElement{openflow.VersionBitmap(openflow.Version10, openflow.Version13)}
}

// respond keeps the connection alive by answering echo requests.
func respond(msg openflow.Message, replyEcho bool) openflow.Message {
	req, ok := msg.(*openflow.EchoRequest)
	if !ok || !replyEcho {
		return nil
	}
	return &openflow.EchoReply{
		Header: openflow.Header{Version: req.Version, Xid: req.Xid},
		Data:   req.Data,
	}
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	klog.Infof("serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		klog.Errorf("error serving metrics: %v", err)
	}
}
