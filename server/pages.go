/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package server

/*
TermSRC is a simple web terminal which runs programs over the sock endpoint.
*/
const TermSRC = `
<!DOCTYPE html>
<html>
<head>
    <title>Curly Terminal</title>

    <meta name="viewport" content="width=device-width, initial-scale=1">

    <style>
        body {
            font-family: monospace;
            background: #1d1f21;
            color: #c5c8c6;
        }

        #out {
            white-space: pre-wrap;
            min-height: 20em;
        }

        .event {
            color: #81a2be;
        }

        .error {
            color: #cc6666;
        }

        #in {
            width: 100%;
            font-family: monospace;
            background: #282a2e;
            color: #c5c8c6;
            border: 0;
        }
    </style>
</head>
<body>
    <div id="out"></div>
    <input id="in" type="text" placeholder="{{ <HI> 3 4 + apples }}" autofocus>
    <script>
        var out = document.getElementById("out");
        var inp = document.getElementById("in");
        var proto = window.location.protocol == "https:" ? "wss://" : "ws://";
        var ws = new WebSocket(proto + window.location.host + "/curly/sock", "curly-sock");

        function print(text, cls) {
            var line = document.createElement("div");
            line.textContent = text;
            if (cls) {
                line.className = cls;
            }
            out.appendChild(line);
        }

        ws.onmessage = function (e) {
            var msg = JSON.parse(e.data);

            if (msg.type == "event") {
                print(msg.payload.event, "event");
            } else if (msg.type == "result") {
                print(msg.payload.output);
            } else if (msg.type == "error") {
                print(msg.payload.error, "error");
            }
        };

        ws.onclose = function () {
            print("Connection closed", "error");
        };

        inp.onkeydown = function (e) {
            if (e.keyCode == 13 && inp.value != "") {
                print("> " + inp.value);
                ws.send(JSON.stringify({program: inp.value}));
                inp.value = "";
            }
        };
    </script>
</body>
</html>
`
