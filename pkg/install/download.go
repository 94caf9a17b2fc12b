package install

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"github.com/uvm-dev/uvm/internal/rand"
	"github.com/uvm-dev/uvm/pkg/model"
	"github.com/uvm-dev/uvm/pkg/release"
	"github.com/uvm-dev/uvm/pkg/status"
	"go.uber.org/zap"
)

// download fetches the asset into a private file under the staging
// parent and returns its path. An empty transfer counts as a failure;
// the partial file never survives an error.
func (inst *Installer) download(ctx context.Context, asset release.Asset) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.URL, nil)
	if err != nil {
		return "", status.ErrDownload.Wrap(err)
	}

	resp, err := inst.client.Do(req)
	if err != nil {
		return "", status.ErrDownload.Wrap(errors.Wrap(err, "fetching "+asset.Name))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", status.ErrDownload.WrapMessage("%s returned HTTP %d", asset.Name, resp.StatusCode)
	}

	dest := path.Join(model.GetPathToStaging(inst.store.Home()), "dl-"+rand.LetterString(8)+"-"+asset.Name)
	f, err := inst.fs.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return "", status.ErrDownload.Wrap(err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = inst.fs.Remove(dest)
		return "", status.ErrDownload.Wrap(errors.Wrap(err, "writing "+asset.Name))
	}
	if n == 0 {
		_ = inst.fs.Remove(dest)
		return "", status.ErrDownload.WrapMessage("%s transferred empty", asset.Name)
	}

	inst.l.Info("downloaded",
		zap.String("asset", asset.Name),
		zap.String("size", units.HumanSize(float64(n))))
	return dest, nil
}
