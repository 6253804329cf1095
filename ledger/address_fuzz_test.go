// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"testing"
)

func FuzzValidateAddress(f *testing.F) {
	f.Add("xrb_1y1craeoqjmpzzd79khsmzm65kfuapug1xyhojfp4rc85d6wm1fcgkcqx8e8")
	f.Add("nano_1hdda1zcipzftncz155ughx5xzyunsjxygbyc6yqjqoz9emmanzc8qybmubs")
	f.Add("ban_3aijypbpn8zqzbzi8kie6foi449put5s7du7y8emz1n1tz91aptck7qkkcd")
	f.Add("nano_")
	f.Add("")
	f.Add("nano_\xff\xfe")
	l := New()
	f.Fuzz(func(t *testing.T, s string) {
		validity := l.ValidateAddress(s)
		if validity.String() == "unknown" {
			t.Fatalf("unexpected validity %d for %q", validity, s)
		}
		addr, err := l.ParseAddress(s)
		if validity != AddressValid {
			if err == nil {
				t.Fatalf("parsed invalid address %q", s)
			}
			return
		}
		if err != nil {
			t.Fatalf("failed to parse valid address %q: %s", s, err)
		}
		if addr.String() != s {
			t.Fatalf("address did not round trip: got %s, wanted %s", addr.String(), s)
		}
	})
}
