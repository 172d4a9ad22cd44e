package site

import (
	"strings"

	"github.com/asif-cs/portfolio/internal/icons"
)

// cssContent is written to style.css. Class names follow the markup built
// by the synth package; state classes are toggled by the engine.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #f8fafc;
  --bg-card: #ffffff;
  --text: #0f172a;
  --text-muted: #64748b;
  --border: #e2e8f0;
  --accent: #4f46e5;
  --accent-soft: rgba(79, 70, 229, 0.1);
  --shadow: 0 4px 16px rgba(15, 23, 42, 0.08);
  --radius: 12px;
  --header-height: 64px;
  --max-width: 1200px;
  --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  --mono: "SF Mono", "Fira Code", Menlo, Consolas, monospace;
}

body[data-theme="dark"] {
  --bg: #0b1120;
  --bg-card: #111827;
  --text: #e2e8f0;
  --text-muted: #94a3b8;
  --border: #1f2937;
  --accent: #818cf8;
  --accent-soft: rgba(129, 140, 248, 0.15);
  --shadow: 0 4px 16px rgba(0, 0, 0, 0.4);
}

/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }

html { scroll-behavior: smooth; scroll-padding-top: var(--header-height); }

body {
  margin: 0;
  font-family: var(--font);
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
  transition: background 0.3s, color 0.3s;
}

body.no-scroll { overflow: hidden; }

a { color: var(--accent); text-decoration: none; }

[hidden] { display: none !important; }

svg { width: 20px; height: 20px; fill: currentColor; }
svg[fill="none"] { fill: none; }

code { font-family: var(--mono); font-size: 0.9em; background: var(--accent-soft); padding: 0.1em 0.35em; border-radius: 4px; }

/* ============ Header ============ */
.main-header {
  position: sticky;
  top: 0;
  z-index: 50;
  height: var(--header-height);
  display: flex;
  align-items: center;
  justify-content: space-between;
  gap: 24px;
  padding: 0 24px;
  background: color-mix(in srgb, var(--bg) 85%, transparent);
  backdrop-filter: blur(8px);
  border-bottom: 1px solid var(--border);
}

#header-name-link { font-weight: 700; color: var(--text); }

.main-nav { display: flex; gap: 20px; }
.main-nav a, .mobile-nav a { color: var(--text-muted); font-weight: 500; transition: color 0.2s; }
.main-nav a:hover, .main-nav a.active,
.mobile-nav a:hover, .mobile-nav a.active { color: var(--accent); }

.header-actions { display: flex; align-items: center; gap: 8px; }

.btn-icon {
  display: inline-flex;
  align-items: center;
  justify-content: center;
  width: 40px;
  height: 40px;
  border: 1px solid var(--border);
  border-radius: 50%;
  background: var(--bg-card);
  color: var(--text);
  cursor: pointer;
  transition: border-color 0.2s, color 0.2s;
}
.btn-icon:hover { border-color: var(--accent); color: var(--accent); }

/* ============ Mobile menu ============ */
.hamburger-menu {
  display: none;
  flex-direction: column;
  gap: 5px;
  padding: 8px;
  background: none;
  border: none;
  cursor: pointer;
}
.hamburger-menu .bar { width: 22px; height: 2px; background: var(--text); transition: transform 0.3s, opacity 0.3s; }
.hamburger-menu.is-active .bar:nth-child(1) { transform: translateY(7px) rotate(45deg); }
.hamburger-menu.is-active .bar:nth-child(2) { opacity: 0; }
.hamburger-menu.is-active .bar:nth-child(3) { transform: translateY(-7px) rotate(-45deg); }

.mobile-nav-overlay {
  position: fixed;
  inset: var(--header-height) 0 0 0;
  z-index: 40;
  display: flex;
  justify-content: center;
  padding-top: 48px;
  background: var(--bg);
  opacity: 0;
  visibility: hidden;
  transition: opacity 0.3s, visibility 0.3s;
}
.mobile-nav-overlay.is-open { opacity: 1; visibility: visible; }
.mobile-nav { display: flex; flex-direction: column; align-items: center; gap: 24px; font-size: 1.25rem; }

/* ============ Profile header ============ */
.profile-header {
  min-height: calc(100vh - var(--header-height));
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  text-align: center;
  padding: 48px 16px;
  position: relative;
}
.user-image { width: 160px; height: 160px; border-radius: 50%; object-fit: cover; border: 4px solid var(--accent-soft); }
.profile-header h1 { margin: 24px 0 4px; font-size: clamp(2rem, 5vw, 3rem); }
.main-title-static { margin: 0; color: var(--text-muted); font-size: 1.2rem; }
.profile-header .title { min-height: 1.6em; margin: 8px 0 24px; font-family: var(--mono); color: var(--accent); }
.profile-header .title::after { content: "|"; animation: blink 1s step-end infinite; }
.social-links { display: flex; gap: 12px; }

.scroll-down-indicator { position: absolute; bottom: 32px; display: flex; flex-direction: column; align-items: center; gap: 6px; transition: opacity 0.3s; }
.scroll-down-indicator.hidden { opacity: 0; pointer-events: none; }
.mouse { width: 24px; height: 38px; border: 2px solid var(--text-muted); border-radius: 12px; position: relative; }
.wheel { position: absolute; left: 50%; top: 6px; width: 4px; height: 8px; margin-left: -2px; background: var(--text-muted); border-radius: 2px; animation: wheel 1.6s infinite; }
.arrow { width: 10px; height: 10px; border-right: 2px solid var(--text-muted); border-bottom: 2px solid var(--text-muted); transform: rotate(45deg); }

@keyframes blink { 50% { opacity: 0; } }
@keyframes wheel { 0% { opacity: 1; transform: translateY(0); } 100% { opacity: 0; transform: translateY(10px); } }

/* ============ Sections ============ */
.main-content { max-width: var(--max-width); margin: 0 auto; padding: 0 16px 64px; }

section {
  padding: 64px 0 0;
  opacity: 0;
  transform: translateY(24px);
  transition: opacity 0.6s ease-out, transform 0.6s ease-out;
}
section.visible { opacity: 1; transform: none; }

.section-title { font-size: 1.75rem; margin: 0 0 24px; }

.card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
  padding: 24px;
}

.bio-card.has-media { display: grid; grid-template-columns: 3fr 2fr; gap: 24px; align-items: start; }
.bio-text p:first-child { margin-top: 0; }

.timeline-item, .education-item { padding: 16px 0; border-bottom: 1px solid var(--border); }
.timeline-item:first-child, .education-item:first-child { padding-top: 0; }
.timeline-item:last-child, .education-item:last-child { border-bottom: none; padding-bottom: 0; }
.timeline-item h3, .education-item h3 { margin: 0; }
.detail-subtitle { color: var(--accent); font-weight: 500; }
.period { color: var(--text-muted); font-size: 0.9rem; }
.detail-notes { margin: 8px 0 0; padding-left: 20px; }

.skills-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 24px; }
.skill-category h3 { margin: 0 0 12px; font-size: 1rem; }
.skill-tags, .tags { display: flex; flex-wrap: wrap; gap: 8px; }
.skill-tag, .tech-tag { padding: 4px 10px; border-radius: 999px; background: var(--accent-soft); color: var(--accent); font-size: 0.85rem; }

/* ============ Projects ============ */
.project-filters { margin-bottom: 24px; }
.filter-controls { display: flex; gap: 8px; }
.filter-btn {
  display: inline-flex;
  align-items: center;
  gap: 6px;
  padding: 6px 14px;
  border: 1px solid var(--border);
  border-radius: 999px;
  background: var(--bg-card);
  color: var(--text);
  cursor: pointer;
  font: inherit;
  font-size: 0.9rem;
  transition: background 0.2s, color 0.2s, border-color 0.2s;
}
.filter-btn svg { width: 16px; height: 16px; }
.filter-btn.active { background: var(--accent); border-color: var(--accent); color: #fff; }
.filter-tags-wrapper { display: flex; flex-wrap: wrap; gap: 8px; max-height: 0; overflow: hidden; transition: max-height 0.3s, margin 0.3s; }
.filter-tags-wrapper.expanded { max-height: 480px; margin-top: 12px; }

.projects-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 24px; }
.project-card { display: flex; flex-direction: column; gap: 16px; }
.project-card.has-media { grid-column: span 2; flex-direction: row; }
.project-card.has-media .project-details { flex: 1; }
.project-card.has-media .media-container { flex: 1; }
.project-card.fade-in { animation: fadeIn 0.5s ease-out; }
.project-details h3 { margin: 0 0 8px; }

.project-description { display: -webkit-box; -webkit-line-clamp: 4; -webkit-box-orient: vertical; overflow: hidden; }
.project-description p { margin: 0 0 8px; }
.project-description.expanded { display: block; -webkit-line-clamp: unset; }
.read-more-btn { padding: 0; border: none; background: none; color: var(--accent); cursor: pointer; font: inherit; font-weight: 500; }

.project-meta { display: flex; flex-direction: column; gap: 12px; margin-top: 16px; }
.project-links { display: flex; gap: 16px; }
.link-underline { position: relative; }
.link-underline::after { content: ""; position: absolute; left: 0; bottom: -2px; width: 0; height: 1px; background: currentColor; transition: width 0.2s; }
.link-underline:hover::after { width: 100%; }

@keyframes fadeIn { from { opacity: 0; transform: scale(0.97); } to { opacity: 1; transform: none; } }

/* ============ Media ============ */
.media-single, .media-carousel-display { position: relative; border-radius: var(--radius); overflow: hidden; cursor: zoom-in; background: #000; aspect-ratio: 16 / 10; }
.media-single img, .media-single video, .media-carousel-display .media-item { width: 100%; height: 100%; object-fit: cover; display: block; }
.media-carousel-display .media-item { position: absolute; inset: 0; opacity: 0; transition: opacity 0.3s; }
.media-carousel-display .media-item.active { opacity: 1; }
.media-caption { margin: 8px 0 0; color: var(--text-muted); font-size: 0.9rem; }

.media-controls { display: flex; align-items: center; gap: 8px; margin-top: 8px; }
.media-thumbnails { display: flex; gap: 6px; overflow-x: auto; flex: 1; }
.thumb-item { width: 56px; height: 40px; object-fit: cover; border-radius: 6px; opacity: 0.5; cursor: pointer; border: 2px solid transparent; transition: opacity 0.2s, border-color 0.2s; }
.thumb-item.active { opacity: 1; border-color: var(--accent); }
.carousel-nav-btn { width: 32px; height: 32px; border-radius: 50%; border: 1px solid var(--border); background: var(--bg-card); color: var(--text); cursor: pointer; display: inline-flex; align-items: center; justify-content: center; }

/* ============ Viewer ============ */
.modal {
  position: fixed;
  inset: 0;
  z-index: 100;
  display: flex;
  align-items: center;
  justify-content: center;
  background: rgba(0, 0, 0, 0.9);
  opacity: 0;
  visibility: hidden;
  transition: opacity 0.3s, visibility 0.3s;
}
.modal.is-open { opacity: 1; visibility: visible; }
.modal-media-wrapper { max-width: 90vw; max-height: 85vh; display: flex; flex-direction: column; align-items: center; }
.modal-media-wrapper img, .modal-media-wrapper video { max-width: 90vw; max-height: 80vh; object-fit: contain; }
.modal-caption { margin-top: 12px; color: #e2e8f0; text-align: center; }
.modal-close, .modal-nav { position: absolute; border: none; background: rgba(255, 255, 255, 0.1); color: #fff; width: 44px; height: 44px; border-radius: 50%; cursor: pointer; display: inline-flex; align-items: center; justify-content: center; }
.modal-close { top: 20px; right: 20px; }
.modal-nav.prev { left: 20px; }
.modal-nav.next { right: 20px; }

/* ============ Contact ============ */
.chat-window { max-width: 560px; margin: 0 auto; padding: 0; overflow: hidden; }
.chat-header { display: flex; align-items: center; gap: 12px; padding: 12px 16px; border-bottom: 1px solid var(--border); }
.chat-avatar { width: 36px; height: 36px; border-radius: 50%; object-fit: cover; }
.chat-name { font-weight: 600; }
.chat-body { padding: 16px; }
.message-container { background: var(--accent-soft); border-radius: 16px 16px 16px 4px; padding: 12px 16px; display: inline-block; }
.contact-intro { margin: 0; }
.typing-indicator { display: none; }
.message-timestamp { display: block; margin-top: 6px; color: var(--text-muted); font-size: 0.75rem; }
.contact-form { display: flex; gap: 8px; padding: 12px 16px; border-top: 1px solid var(--border); }
.form-textarea { flex: 1; min-height: 44px; resize: vertical; padding: 10px 12px; border: 1px solid var(--border); border-radius: 20px; background: var(--bg); color: var(--text); font: inherit; }
.contact-button { flex-shrink: 0; background: var(--accent); color: #fff; border-color: var(--accent); }

/* ============ Footer ============ */
.main-footer { border-top: 1px solid var(--border); padding: 48px 24px; background: var(--bg-card); }
.footer-columns { max-width: var(--max-width); margin: 0 auto; display: grid; grid-template-columns: repeat(3, 1fr); gap: 32px; }
.footer-col h3 { margin: 0 0 12px; font-size: 1rem; }
.footer-col p { margin: 4px 0; color: var(--text-muted); font-size: 0.9rem; }
.footer-links ul { list-style: none; margin: 0; padding: 0; display: grid; gap: 6px; }
.social-links-footer { display: flex; gap: 8px; }

.back-to-top {
  position: fixed;
  right: 24px;
  bottom: 24px;
  z-index: 60;
  width: 44px;
  height: 44px;
  border-radius: 50%;
  border: none;
  background: var(--accent);
  color: #fff;
  cursor: pointer;
  display: inline-flex;
  align-items: center;
  justify-content: center;
  opacity: 0;
  visibility: hidden;
  transform: translateY(12px);
  transition: opacity 0.3s, visibility 0.3s, transform 0.3s;
}
.back-to-top.visible { opacity: 1; visibility: visible; transform: none; }

/* ============ Responsive ============ */
@media (max-width: 1099px) {
  .projects-grid { grid-template-columns: repeat(2, 1fr); }
  .project-card.has-media { grid-column: span 2; }
}

@media (max-width: 767px) {
  .main-nav { display: none; }
  .hamburger-menu { display: flex; }
  .projects-grid { grid-template-columns: 1fr; }
  .project-card.has-media { grid-column: auto; flex-direction: column; }
  .bio-card.has-media { grid-template-columns: 1fr; }
  .footer-columns { grid-template-columns: 1fr; }
}
`

// jsContent is written to script.js. When the page is served live the body
// carries data-live with the websocket path and the script only forwards
// events and applies the server's patches. A static build has no engine
// behind it, so the script runs every interaction itself. Theme glyph paths
// are filled in by Script.
const jsContent = `(function() {
  'use strict';

  var body = document.body;

  // ============ Helpers ============
  function nearestId(el) {
    while (el && el !== document && !el.id) el = el.parentElement;
    return el && el.id ? el.id : '';
  }

  function focusedId() {
    return document.activeElement ? nearestId(document.activeElement) : '';
  }

  function sectionLayout() {
    var rects = [];
    document.querySelectorAll('.main-content > section[id]').forEach(function(s) {
      var r = s.getBoundingClientRect();
      rects.push({ id: s.id, top: r.top + window.scrollY, height: r.height });
    });
    return rects;
  }

  function throttleFrame(fn) {
    var queued = false;
    return function() {
      if (queued) return;
      queued = true;
      window.requestAnimationFrame(function() { queued = false; fn(); });
    };
  }

  document.querySelectorAll('img[data-fallback]').forEach(function(img) {
    img.addEventListener('error', function onError() {
      img.removeEventListener('error', onError);
      img.src = img.getAttribute('data-fallback');
    });
    if (!img.getAttribute('src')) img.src = img.getAttribute('data-fallback');
  });

  var live = body.getAttribute('data-live');
  if (live && window.WebSocket) {
    connect(live);
  } else {
    standalone();
  }

  // ============ Live session ============
  function connect(path) {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + location.host + path);
    var backlog = [];

    function send(type, data) {
      var msg = JSON.stringify({ type: type, data: data });
      if (ws.readyState === WebSocket.OPEN) ws.send(msg);
      else backlog.push(msg);
    }

    ws.addEventListener('open', function() {
      backlog.forEach(function(m) { ws.send(m); });
      backlog = [];
      sendResize();
      send('scroll', { y: window.scrollY });
    });

    ws.addEventListener('message', function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === 'reload') {
        location.reload();
        return;
      }
      if (msg.type === 'update') applyUpdate(msg);
    });

    ws.addEventListener('close', function() {
      body.removeAttribute('data-live');
    });

    function sendResize() {
      send('resize', { width: window.innerWidth, height: window.innerHeight, layout: sectionLayout() });
    }

    document.addEventListener('click', function(e) {
      var target = nearestId(e.target);
      if (!target) return;
      send('click', { target: target, focused: focusedId() });
    });

    document.addEventListener('keydown', function(e) {
      if (e.key === 'Escape' || e.key === 'ArrowLeft' || e.key === 'ArrowRight') {
        send('key', { key: e.key });
      }
    });

    document.addEventListener('focusin', function(e) {
      var target = nearestId(e.target);
      if (target) send('focus', { target: target });
    });

    document.addEventListener('submit', function(e) {
      var form = e.target;
      if (!form.id) return;
      e.preventDefault();
      var fields = {};
      new FormData(form).forEach(function(v, k) { fields[k] = String(v); });
      send('submit', { form: form.id, fields: fields });
    });

    window.addEventListener('scroll', throttleFrame(function() {
      send('scroll', { y: window.scrollY });
    }), { passive: true });

    window.addEventListener('resize', throttleFrame(sendResize));
    window.addEventListener('load', sendResize);
  }

  function applyUpdate(msg) {
    (msg.patches || []).forEach(applyPatch);
    if (msg.focus) {
      var f = document.getElementById(msg.focus);
      if (f) f.focus();
    }
    (msg.effects || []).forEach(function(fx) {
      if (fx.type === 'navigate') window.location.href = fx.url;
      if (fx.type === 'scroll') window.scrollTo({ top: fx.top, behavior: fx.smooth ? 'smooth' : 'auto' });
    });
  }

  function applyPatch(p) {
    var el = document.getElementById(p.id);
    if (!el) return;
    el.className = p.class;
    var attrs = p.attrs || {};
    Array.prototype.slice.call(el.attributes).forEach(function(a) {
      if (a.name === 'id' || a.name === 'class' || a.name === 'hidden') return;
      if (!(a.name in attrs)) el.removeAttribute(a.name);
    });
    Object.keys(attrs).forEach(function(k) {
      if (el.getAttribute(k) !== attrs[k]) el.setAttribute(k, attrs[k]);
    });
    el.hidden = !!p.hidden;
    if (p.html != null) {
      if (el.tagName === 'TEXTAREA') {
        var t = document.createElement('textarea');
        t.innerHTML = p.html;
        el.value = t.value;
      } else {
        el.querySelectorAll('video').forEach(function(v) { v.pause(); });
        el.innerHTML = p.html;
      }
    }
    if (p.playing != null && el.tagName === 'VIDEO') {
      if (p.playing) {
        var played = el.play();
        if (played && played.catch) played.catch(function() {});
      } else {
        el.pause();
      }
    }
  }

  // ============ Static page ============
  // Without a server every machine runs here, against the same markup and
  // classes the engine drives.
  var SUN_PATH = '__SUN_PATH__';
  var MOON_PATH = '__MOON_PATH__';

  function toArray(list) {
    return Array.prototype.slice.call(list);
  }

  function standalone() {
    var backToTop = document.getElementById('back-to-top');
    var indicator = document.getElementById('scroll-indicator');

    setupTheme();
    setupMenu();
    setupSections();
    setupFilters();
    setupCarousels();
    setupMedia(setupViewer());
    setupReadMore();
    setupContact();
    setupTitles();

    if (backToTop) {
      backToTop.addEventListener('click', function() {
        window.scrollTo({ top: 0, behavior: 'smooth' });
      });
    }

    window.addEventListener('scroll', throttleFrame(function() {
      var y = window.scrollY;
      if (backToTop) backToTop.classList.toggle('visible', y > 500);
      if (indicator) indicator.classList.toggle('hidden', y > 50);
    }), { passive: true });
  }

  // ============ Theme ============
  function setupTheme() {
    var toggle = document.getElementById('theme-toggle');

    function apply(theme) {
      body.setAttribute('data-theme', theme);
      var path = toggle && toggle.querySelector('path');
      if (path) path.setAttribute('d', theme === 'dark' ? SUN_PATH : MOON_PATH);
      try { localStorage.setItem('theme', theme); } catch (e) {}
    }

    var theme = null;
    try { theme = localStorage.getItem('theme'); } catch (e) {}
    if (theme !== 'light' && theme !== 'dark') {
      if (window.matchMedia) {
        theme = window.matchMedia('(prefers-color-scheme: dark)').matches ? 'dark' : 'light';
      } else {
        theme = body.getAttribute('data-theme') === 'dark' ? 'dark' : 'light';
      }
    }
    apply(theme);

    if (toggle) {
      toggle.addEventListener('click', function() {
        apply(body.getAttribute('data-theme') === 'dark' ? 'light' : 'dark');
      });
    }
  }

  // ============ Mobile menu ============
  function setupMenu() {
    var hamburger = document.getElementById('hamburger');
    var overlay = document.getElementById('mobile-nav-overlay');
    if (!hamburger || !overlay) return;

    function setMenu(open) {
      hamburger.classList.toggle('is-active', open);
      overlay.classList.toggle('is-open', open);
      body.classList.toggle('no-scroll', open);
      body.classList.toggle('menu-is-open', open);
    }

    hamburger.addEventListener('click', function() {
      setMenu(!overlay.classList.contains('is-open'));
    });
    overlay.addEventListener('click', function(e) {
      if (e.target === overlay || e.target.closest('a')) setMenu(false);
    });
  }

  // ============ Reveal and scroll-spy ============
  function setupSections() {
    var sections = toArray(document.querySelectorAll('.main-content > section[id]'));
    if (!window.IntersectionObserver) {
      sections.forEach(function(s) { s.classList.add('visible'); });
      return;
    }

    var reveal = new IntersectionObserver(function(entries) {
      entries.forEach(function(e) {
        if (e.isIntersecting) e.target.classList.add('visible');
      });
    }, { threshold: 0.1 });

    var links = toArray(document.querySelectorAll('.main-nav a, .mobile-nav a'));
    var heights = {};
    var thresholds = [];
    for (var i = 0; i <= 10; i++) thresholds.push(i / 10);

    // Ties go to the earlier section.
    var spy = new IntersectionObserver(function(entries) {
      entries.forEach(function(e) { heights[e.target.id] = e.intersectionRect.height; });
      var best = null;
      var max = 0;
      sections.forEach(function(s) {
        if (heights[s.id] > max) {
          max = heights[s.id];
          best = s.id;
        }
      });
      if (!best) return;
      links.forEach(function(a) {
        a.classList.toggle('active', a.getAttribute('href') === '#' + best);
      });
    }, { threshold: thresholds });

    sections.forEach(function(s) {
      heights[s.id] = 0;
      reveal.observe(s);
      spy.observe(s);
    });
  }

  // ============ Tag filter ============
  function setupFilters() {
    document.querySelectorAll('.project-filters').forEach(function(bar) {
      var section = bar.closest('section');
      var all = bar.querySelector('.filter-controls .filter-btn:first-child');
      var drawerBtn = bar.querySelector('[aria-expanded]');
      var drawer = bar.querySelector('.filter-tags-wrapper');
      var tagButtons = toArray(bar.querySelectorAll('.filter-btn[data-tag]'));
      var cards = section ? toArray(section.querySelectorAll('.project-card')) : [];
      var active = {};

      function cardTags(card) {
        return toArray(card.querySelectorAll('.tech-tag')).map(function(t) { return t.textContent; });
      }

      function apply() {
        var any = Object.keys(active).length > 0;
        if (all) all.classList.toggle('active', !any);
        cards.forEach(function(card) {
          var show = !any || cardTags(card).some(function(t) { return active[t]; });
          if (!show) {
            card.hidden = true;
            return;
          }
          if (!card.hidden) return;
          card.hidden = false;
          card.classList.add('fade-in');
          clearTimeout(card.fadeTimer);
          card.fadeTimer = setTimeout(function() { card.classList.remove('fade-in'); }, 500);
        });
      }

      if (all) {
        all.addEventListener('click', function() {
          active = {};
          tagButtons.forEach(function(b) { b.classList.remove('active'); });
          apply();
        });
      }
      if (drawerBtn && drawer) {
        drawerBtn.addEventListener('click', function() {
          var open = !drawer.classList.contains('expanded');
          drawer.classList.toggle('expanded', open);
          drawerBtn.classList.toggle('active', open);
          drawerBtn.setAttribute('aria-expanded', open ? 'true' : 'false');
        });
      }
      tagButtons.forEach(function(b) {
        b.addEventListener('click', function() {
          var tag = b.getAttribute('data-tag');
          if (active[tag]) delete active[tag];
          else active[tag] = true;
          b.classList.toggle('active', !!active[tag]);
          apply();
        });
      });
    });
  }

  // ============ Media carousel ============
  function describeMedia(el) {
    return {
      type: el.tagName === 'VIDEO' ? 'video' : 'image',
      src: el.getAttribute('src'),
      caption: el.getAttribute('data-caption') || '',
      alt: el.getAttribute('alt') || ''
    };
  }

  function setupCarousels() {
    document.querySelectorAll('.media-carousel').forEach(function(carousel) {
      var display = carousel.querySelector('.media-carousel-display');
      var items = display ? toArray(display.querySelectorAll('.media-item')) : [];
      var thumbs = toArray(carousel.querySelectorAll('.thumb-item'));
      var caption = carousel.querySelector('.media-caption');
      var prev = carousel.querySelector('.carousel-nav-btn.prev');
      var next = carousel.querySelector('.carousel-nav-btn.next');
      var current = 0;
      if (!items.length) return;

      function show(i) {
        if (i < 0 || i >= items.length) return;
        current = i;
        items.forEach(function(el, j) {
          if (el.tagName === 'VIDEO') el.pause();
          el.classList.toggle('active', j === i);
        });
        thumbs.forEach(function(el, j) { el.classList.toggle('active', j === i); });

        var item = describeMedia(items[i]);
        carousel.setAttribute('data-current-index', String(i));
        display.setAttribute('data-media-src', item.src);
        display.setAttribute('data-media-type', item.type);
        display.setAttribute('data-full-caption', item.caption);
        if (caption) {
          caption.textContent = item.caption;
          caption.hidden = !item.caption.trim();
        }
      }

      if (prev) prev.addEventListener('click', function() { show((current - 1 + items.length) % items.length); });
      if (next) next.addEventListener('click', function() { show((current + 1) % items.length); });
      thumbs.forEach(function(t, i) {
        t.addEventListener('click', function() { show(i); });
      });
      show(0);
    });
  }

  // ============ Fullscreen viewer ============
  function setupViewer() {
    var modal = document.getElementById('fullscreenModal');
    var content = document.getElementById('modal-media');
    var closeBtn = document.getElementById('modal-close');
    var prevBtn = document.getElementById('modal-prev');
    var nextBtn = document.getElementById('modal-next');
    if (!modal || !content || !closeBtn) return null;

    var state = null;
    var focusTimer = null;

    function pause() {
      content.querySelectorAll('video').forEach(function(v) { v.pause(); });
    }

    function render() {
      pause();
      content.innerHTML = '';
      var item = state.media[state.index];
      if (item.type === 'video') {
        var video = document.createElement('video');
        video.src = item.src;
        video.controls = true;
        video.playsInline = true;
        video.loop = true;
        content.appendChild(video);
        var played = video.play();
        if (played && played.catch) played.catch(function() {});
      } else {
        var img = document.createElement('img');
        img.src = item.src;
        img.alt = item.alt || 'Fullscreen image';
        content.appendChild(img);
      }
      if (item.caption) {
        var cap = document.createElement('div');
        cap.className = 'modal-caption';
        cap.textContent = item.caption;
        content.appendChild(cap);
      }
    }

    // Reopening while open keeps the first return target.
    function open(media, index) {
      if (index < 0 || index >= media.length) return;
      var returnFocus = state ? state.returnFocus : document.activeElement;
      state = { media: media, index: index, returnFocus: returnFocus };
      render();

      var multi = media.length > 1;
      if (prevBtn) prevBtn.hidden = !multi;
      if (nextBtn) nextBtn.hidden = !multi;
      modal.classList.add('is-open');
      body.classList.add('no-scroll');

      clearTimeout(focusTimer);
      focusTimer = setTimeout(function() {
        if (state) closeBtn.focus();
      }, 100);
    }

    function step(delta) {
      if (!state) return;
      var n = state.media.length;
      state.index = (state.index + delta + n) % n;
      render();
    }

    function close() {
      if (!state) return;
      clearTimeout(focusTimer);
      pause();
      modal.classList.remove('is-open');
      content.innerHTML = '';
      body.classList.remove('no-scroll');
      var returnFocus = state.returnFocus;
      state = null;
      if (returnFocus && returnFocus.focus) returnFocus.focus();
    }

    closeBtn.addEventListener('click', close);
    if (prevBtn) prevBtn.addEventListener('click', function() { step(-1); });
    if (nextBtn) nextBtn.addEventListener('click', function() { step(1); });
    modal.addEventListener('click', function(e) {
      if (e.target === modal) close();
    });
    document.addEventListener('keydown', function(e) {
      if (!state) return;
      if (e.key === 'Escape') close();
      else if (e.key === 'ArrowRight' && state.media.length > 1) step(1);
      else if (e.key === 'ArrowLeft' && state.media.length > 1) step(-1);
    });

    return { open: open };
  }

  function setupMedia(viewer) {
    if (!viewer) return;
    document.addEventListener('click', function(e) {
      var clickable = e.target.closest && e.target.closest('.media-clickable');
      if (!clickable) return;

      var carousel = clickable.closest('.media-carousel');
      if (carousel) {
        var media = toArray(clickable.querySelectorAll('.media-item')).map(describeMedia);
        viewer.open(media, parseInt(carousel.getAttribute('data-current-index') || '0', 10));
        return;
      }

      var src = clickable.getAttribute('data-media-src');
      if (!src) return;
      var img = clickable.querySelector('img');
      viewer.open([{
        type: clickable.getAttribute('data-media-type') || 'image',
        src: src,
        caption: clickable.getAttribute('data-full-caption') || '',
        alt: img ? img.getAttribute('alt') || '' : ''
      }], 0);
    });
  }

  // ============ Read more ============
  function setupReadMore() {
    var blocks = [];
    document.querySelectorAll('.project-description-wrapper').forEach(function(wrapper) {
      var desc = wrapper.querySelector('.project-description');
      var btn = wrapper.querySelector('.read-more-btn');
      if (!desc || !btn) return;
      blocks.push({ desc: desc, btn: btn });
      btn.addEventListener('click', function() {
        var expanded = desc.classList.toggle('expanded');
        btn.textContent = expanded ? 'See Less' : 'See More';
      });
    });
    if (!blocks.length) return;

    function measure() {
      blocks.forEach(function(b) {
        if (b.desc.classList.contains('expanded')) return;
        b.btn.hidden = b.desc.scrollHeight <= b.desc.clientHeight;
      });
    }

    setTimeout(measure, 500);
    var resizeTimer = null;
    window.addEventListener('resize', function() {
      clearTimeout(resizeTimer);
      resizeTimer = setTimeout(measure, 250);
    });
  }

  // ============ Contact ============
  function setupContact() {
    document.querySelectorAll('form.contact-form').forEach(function(form) {
      form.addEventListener('submit', function(e) {
        e.preventDefault();
        var field = form.querySelector('textarea');
        var message = field ? field.value : '';
        window.location.href = 'mailto:' + (form.getAttribute('data-email') || '') +
          '?subject=' + encodeURIComponent('Inquiry from Portfolio') +
          '&body=' + encodeURIComponent(message);
        if (field) field.value = '';
      });
    });
  }

  // ============ Title rotation ============
  function setupTitles() {
    var target = document.getElementById('animated-title');
    if (!target || !window.fetch) return;
    fetch('portfolio.json')
      .then(function(r) { return r.ok ? r.json() : null; })
      .then(function(graph) {
        var titles = rotatingTitles(graph);
        if (titles.length) rotate(target, titles);
      })
      .catch(function() {});
  }

  function rotatingTitles(graph) {
    var sections = (graph && graph.sections) || [];
    for (var i = 0; i < sections.length; i++) {
      if (sections[i].type !== 'skills') continue;
      var categories = sections[i].content || {};
      var out = [];
      Object.keys(categories).forEach(function(k) { out = out.concat(categories[k] || []); });
      return out;
    }
    return [];
  }

  function rotate(target, titles) {
    var next = 0;

    function type(chars, n) {
      target.textContent = chars.slice(0, n).join('');
      if (n < chars.length) setTimeout(function() { type(chars, n + 1); }, 80);
      else setTimeout(function() { erase(chars, n - 1); }, 80 + 2000);
    }

    function erase(chars, n) {
      target.textContent = chars.slice(0, Math.max(n, 0)).join('');
      if (n > 0) setTimeout(function() { erase(chars, n - 1); }, 40);
      else setTimeout(cycle, 40 + 500);
    }

    function cycle() {
      var chars = Array.from(titles[next]);
      next = (next + 1) % titles.length;
      type(chars, 1);
    }

    cycle();
  }
})();
`

// Stylesheet returns the page stylesheet.
func Stylesheet() string { return cssContent }

var script = strings.NewReplacer(
	"__SUN_PATH__", icons.Sun,
	"__MOON_PATH__", icons.Moon,
).Replace(jsContent)

// Script returns the client script.
func Script() string { return script }
