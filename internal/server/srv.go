package server

import (
	"bytes"
	"io"
	"strings"
	"time"

	"9fans.net/go/plan9"
	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/zap"
)

// slowRequest is the handling time above which a request is logged.
const slowRequest = 100 * time.Millisecond

// fid is the per-connection state of one client file handle.
type fid struct {
	ft   int
	id   int
	open bool
	buf  []byte // file contents, snapshotted at Topen
	line []byte // partial ctl command
}

type conn struct {
	srv   *Server
	fids  map[uint32]*fid
	msize uint32
}

// A handler answers one T-message. The reply tag is filled in by the caller.
type handler func(cn *conn, tx *plan9.Fcall) *plan9.Fcall

var handlers = map[uint8]handler{
	plan9.Tversion: (*conn).version,
	plan9.Tattach:  (*conn).attach,
	plan9.Tflush:   func(*conn, *plan9.Fcall) *plan9.Fcall { return &plan9.Fcall{Type: plan9.Rflush} },
	plan9.Twalk:    (*conn).walk,
	plan9.Topen:    (*conn).open,
	plan9.Tread:    (*conn).read,
	plan9.Twrite:   (*conn).write,
	plan9.Tclunk:   (*conn).clunk,
	plan9.Tstat:    (*conn).stat,
	plan9.Tauth:    refuse("no authentication required"),
	plan9.Tcreate:  refuse("read-only file system"),
	plan9.Tremove:  refuse("read-only file system"),
	plan9.Twstat:   refuse("read-only file system"),
}

func refuse(msg string) handler {
	return func(*conn, *plan9.Fcall) *plan9.Fcall { return rerr(msg) }
}

func rerr(msg string) *plan9.Fcall {
	return &plan9.Fcall{Type: plan9.Rerror, Ename: msg}
}

func (s *Server) handleConn(rw io.ReadWriter) {
	cn := &conn{
		srv:   s,
		fids:  make(map[uint32]*fid),
		msize: 8192 + plan9.IOHDRSZ,
	}
	for {
		tx, err := plan9.ReadFcall(rw)
		if err != nil {
			return
		}
		if err := plan9.WriteFcall(rw, cn.handle(tx)); err != nil {
			return
		}
	}
}

func (cn *conn) handle(tx *plan9.Fcall) *plan9.Fcall {
	start := time.Now()
	rx := rerr("unknown message type")
	if h, ok := handlers[tx.Type]; ok {
		rx = h(cn, tx)
	}
	rx.Tag = tx.Tag
	if elapsed := time.Since(start); elapsed > slowRequest {
		logger.L(cn.srv.ctx).Warn("slow request",
			zap.Stringer("fcall", tx),
			zap.Uint32("generation", cn.srv.tree().gen),
			zap.Duration("elapsed", elapsed))
	}
	return rx
}

// lookup returns the fid named by tx, or the error reply to send instead.
func (cn *conn) lookup(tx *plan9.Fcall, wantOpen bool) (*fid, *plan9.Fcall) {
	f := cn.fids[tx.Fid]
	switch {
	case f == nil:
		return nil, rerr("fid unknown")
	case wantOpen && !f.open:
		return nil, rerr("not open")
	case !wantOpen && f.open:
		return nil, rerr("fid is open")
	}
	return f, nil
}

// version negotiates the message size and forgets all fids.
func (cn *conn) version(tx *plan9.Fcall) *plan9.Fcall {
	cn.msize = min(tx.Msize, cn.msize)
	cn.fids = make(map[uint32]*fid)
	rx := &plan9.Fcall{Type: plan9.Rversion, Msize: cn.msize, Version: "unknown"}
	if strings.HasPrefix(tx.Version, "9P2000") {
		rx.Version = "9P2000"
	}
	return rx
}

func (cn *conn) attach(tx *plan9.Fcall) *plan9.Fcall {
	cn.fids[tx.Fid] = &fid{ft: ftRoot}
	return &plan9.Fcall{Type: plan9.Rattach, Qid: cn.srv.tree().qid(ftRoot, 0)}
}

// walk follows tx.Wname from the fid. The new fid exists only when every
// name was walked; a partial walk still reports the qids reached.
func (cn *conn) walk(tx *plan9.Fcall) *plan9.Fcall {
	f, bad := cn.lookup(tx, false)
	if bad != nil {
		return bad
	}
	t := cn.srv.tree()
	ft, id := f.ft, f.id
	rx := &plan9.Fcall{Type: plan9.Rwalk, Wqid: make([]plan9.Qid, 0, len(tx.Wname))}
	for _, name := range tx.Wname {
		nft, nid, err := t.walkStep(ft, id, name)
		if err != nil {
			if len(rx.Wqid) == 0 {
				return rerr(err.Error())
			}
			return rx
		}
		ft, id = nft, nid
		rx.Wqid = append(rx.Wqid, t.qid(ft, id))
	}
	cn.fids[tx.Newfid] = &fid{ft: ft, id: id}
	return rx
}

// open snapshots the contents of readable files. Only ctl is writable.
func (cn *conn) open(tx *plan9.Fcall) *plan9.Fcall {
	f, bad := cn.lookup(tx, false)
	if bad != nil {
		return bad
	}
	t := cn.srv.tree()
	mode := tx.Mode & 3
	switch {
	case isDir(f.ft) && mode != plan9.OREAD:
		return rerr("is a directory")
	case isDir(f.ft):
		f.buf = t.readDir(f.ft)
	case f.ft == ftCtl && mode != plan9.OWRITE, f.ft != ftCtl && mode != plan9.OREAD:
		return rerr("permission denied")
	case f.ft != ftCtl:
		buf, err := t.contents(f.ft, f.id)
		if err != nil {
			return rerr(err.Error())
		}
		f.buf = buf
	}
	f.open = true
	return &plan9.Fcall{
		Type:   plan9.Ropen,
		Qid:    t.qid(f.ft, f.id),
		Iounit: cn.msize - plan9.IOHDRSZ,
	}
}

func (cn *conn) read(tx *plan9.Fcall) *plan9.Fcall {
	f, bad := cn.lookup(tx, true)
	if bad != nil {
		return bad
	}
	return &plan9.Fcall{Type: plan9.Rread, Data: window(f.buf, tx.Offset, tx.Count)}
}

// window returns at most n bytes of buf starting at off.
func window(buf []byte, off uint64, n uint32) []byte {
	if off >= uint64(len(buf)) {
		return nil
	}
	return buf[off:min(off+uint64(n), uint64(len(buf)))]
}

// write runs each complete ctl line. A trailing partial line waits for
// the rest of its command.
func (cn *conn) write(tx *plan9.Fcall) *plan9.Fcall {
	f, bad := cn.lookup(tx, true)
	if bad != nil {
		return bad
	}
	if f.ft != ftCtl {
		return rerr("not writable")
	}
	f.line = append(f.line, tx.Data...)
	for {
		cmd, rest, ok := bytes.Cut(f.line, []byte("\n"))
		if !ok {
			break
		}
		f.line = rest
		switch string(bytes.TrimSpace(cmd)) {
		case "":
		case "reload":
			if err := cn.srv.Reload(); err != nil {
				return rerr(err.Error())
			}
		default:
			return rerr("unknown ctl command: " + string(bytes.TrimSpace(cmd)))
		}
	}
	return &plan9.Fcall{Type: plan9.Rwrite, Count: uint32(len(tx.Data))}
}

func (cn *conn) clunk(tx *plan9.Fcall) *plan9.Fcall {
	delete(cn.fids, tx.Fid)
	return &plan9.Fcall{Type: plan9.Rclunk}
}

func (cn *conn) stat(tx *plan9.Fcall) *plan9.Fcall {
	f := cn.fids[tx.Fid]
	if f == nil {
		return rerr("fid unknown")
	}
	d := cn.srv.tree().dir(f.ft, f.id)
	stat, err := d.Bytes()
	if err != nil {
		return rerr(err.Error())
	}
	return &plan9.Fcall{Type: plan9.Rstat, Stat: stat}
}
